package abicodec

import (
	"encoding/hex"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"

	"github.com/viswanathkgp12/matic-security-hackathon/internal/ethutils"
)

type Parameter struct {
	Name string
	Type abi.Type
}

// Schema is the ordered parameter list of one side (inputs or outputs) of a method.
type Schema []Parameter

// NewSchema builds a schema from declarations of the form "type" or
// "type name", e.g. NewSchema("address proposer", "uint256 start").
func NewSchema(decls ...string) (Schema, error) {
	schema := make(Schema, 0, len(decls))
	for _, decl := range decls {
		parts := strings.Fields(decl)
		if len(parts) == 0 || len(parts) > 2 {
			return nil, errors.Errorf("bad parameter declaration %q", decl)
		}
		typ, err := abi.NewType(parts[0], "", nil)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %q", decl)
		}
		p := Parameter{Type: typ}
		if len(parts) == 2 {
			p.Name = parts[1]
		}
		schema = append(schema, p)
	}
	return schema, nil
}

func MustNewSchema(decls ...string) Schema {
	s, err := NewSchema(decls...)
	if err != nil {
		panic(err)
	}
	return s
}

func schemaFromArguments(args abi.Arguments) Schema {
	schema := make(Schema, len(args))
	for i, arg := range args {
		schema[i] = Parameter{Name: arg.Name, Type: arg.Type}
	}
	return schema
}

func (s Schema) arguments() abi.Arguments {
	args := make(abi.Arguments, len(s))
	for i, p := range s {
		args[i] = abi.Argument{Name: p.Name, Type: p.Type}
	}
	return args
}

func (s Schema) String() string {
	decls := make([]string, len(s))
	for i, p := range s {
		decls[i] = strings.TrimSpace(p.Type.String() + " " + p.Name)
	}
	return "(" + strings.Join(decls, ",") + ")"
}

// Selector is the first four bytes of keccak256 of a method signature.
type Selector [4]byte

func ParseSelector(s string) (Selector, error) {
	var sel Selector
	bz, err := hex.DecodeString(ethutils.TrimHexPrefix(s))
	if err != nil || len(bz) != len(sel) {
		return sel, errors.Errorf("bad selector %q", s)
	}
	copy(sel[:], bz)
	return sel, nil
}

func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

func (s Selector) Hex() string {
	return "0x" + hex.EncodeToString(s[:])
}

type Method struct {
	Name     string
	Sig      string
	Selector Selector
	Inputs   Schema
	Outputs  Schema
}

// Registry maps method names to their schemas. It is built once from a
// contract's ABI JSON and is read-only afterwards.
//
// Names are matched exactly. When the ABI overloads a name, the entry declared
// first owns the plain name and later ones are registered as name0, name1, ...
// so a lookup by the plain name resolves to the first declaration.
type Registry struct {
	methods map[string]*Method
}

func ParseRegistry(abiJSON string) (*Registry, error) {
	w, err := ethutils.ParseABI(abiJSON)
	if err != nil {
		return nil, errors.Wrap(err, "parse abi")
	}
	reg := &Registry{methods: make(map[string]*Method)}
	for name, m := range w.GetABI().Methods {
		method := &Method{
			Name:    m.RawName,
			Sig:     m.Sig,
			Inputs:  schemaFromArguments(m.Inputs),
			Outputs: schemaFromArguments(m.Outputs),
		}
		copy(method.Selector[:], m.ID)
		reg.methods[name] = method
	}
	return reg, nil
}

func MustParseRegistry(abiJSON string) *Registry {
	reg, err := ParseRegistry(abiJSON)
	if err != nil {
		panic(err)
	}
	return reg
}

func (r *Registry) Method(name string) (*Method, error) {
	m, ok := r.methods[name]
	if !ok {
		return nil, errors.Wrapf(MethodNotFound, "%q", name)
	}
	return m, nil
}

func (r *Registry) Inputs(name string) (Schema, error) {
	m, err := r.Method(name)
	if err != nil {
		return nil, err
	}
	return m.Inputs, nil
}

func (r *Registry) Outputs(name string) (Schema, error) {
	m, err := r.Method(name)
	if err != nil {
		return nil, err
	}
	return m.Outputs, nil
}

// Names lists the registered method names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupSchema returns the output schema of methodName.
func LookupSchema(reg *Registry, methodName string) (Schema, error) {
	return reg.Outputs(methodName)
}
