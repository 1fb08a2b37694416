package main

import (
	"os"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/viswanathkgp12/matic-security-hackathon/param"
)

type Context struct {
	Home   string
	Config *param.AppConfig
	Logger log.Logger
}

func NewDefaultContext() *Context {
	return NewContext(
		param.DefaultAppConfig(),
		log.NewTMLogger(log.NewSyncWriter(os.Stderr)),
	)
}

func NewContext(config *param.AppConfig, logger log.Logger) *Context {
	return &Context{Home: param.DefaultHome, Config: config, Logger: logger}
}
