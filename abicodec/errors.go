package abicodec

import (
	"github.com/pkg/errors"
)

var (
	MethodNotFound    = errors.New("method not found")
	EmptyResult       = errors.New("empty result")
	SelectorNotFound  = errors.New("selector not found")
	MalformedEncoding = errors.New("malformed abi encoding")
)
