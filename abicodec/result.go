package abicodec

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

type Kind int

const (
	KindScalar Kind = iota
	KindFields
)

// Field is one named decoded value. Name is empty when the ABI left the
// parameter unnamed; the value is then reachable by index only.
type Field struct {
	Name  string
	Value interface{}
}

// Result is the outcome of decoding against a schema: a bare value when the
// schema has exactly one parameter, an ordered list of fields otherwise.
type Result struct {
	kind   Kind
	fields []Field
}

func newResult(schema Schema, values []interface{}) Result {
	fields := make([]Field, len(values))
	for i, v := range values {
		fields[i] = Field{Name: schema[i].Name, Value: v}
	}
	if len(fields) == 1 {
		return Result{kind: KindScalar, fields: fields}
	}
	return Result{kind: KindFields, fields: fields}
}

func (r Result) Kind() Kind {
	return r.kind
}

func (r Result) IsScalar() bool {
	return r.kind == KindScalar && len(r.fields) != 0
}

// Scalar returns the bare value of a one-parameter result, nil otherwise.
func (r Result) Scalar() interface{} {
	if r.kind != KindScalar || len(r.fields) == 0 {
		return nil
	}
	return r.fields[0].Value
}

func (r Result) Fields() []Field {
	return r.fields
}

func (r Result) Len() int {
	return len(r.fields)
}

// Values returns the decoded values in parameter order.
func (r Result) Values() []interface{} {
	values := make([]interface{}, len(r.fields))
	for i, f := range r.fields {
		values[i] = f.Value
	}
	return values
}

// Get returns the first field declared with name.
func (r Result) Get(name string) (interface{}, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (r Result) Index(i int) (interface{}, bool) {
	if i < 0 || i >= len(r.fields) {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Map renders the fields keyed by name; unnamed fields are keyed by index.
func (r Result) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.fields))
	for i, f := range r.fields {
		m[fieldKey(i, f)] = f.Value
	}
	return m
}

func fieldKey(i int, f Field) string {
	if f.Name == "" {
		return strconv.Itoa(i)
	}
	return f.Name
}

func (r Result) lookup(name string) (interface{}, error) {
	v, ok := r.Get(name)
	if !ok {
		if i, err := strconv.Atoi(name); err == nil {
			v, ok = r.Index(i)
		}
	}
	if !ok {
		return nil, errors.Wrapf(MalformedEncoding, "no field %q in result", name)
	}
	return v, nil
}

func (r Result) BigInt(name string) (*big.Int, error) {
	v, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return AsBigInt(v)
}

func (r Result) Address(name string) (common.Address, error) {
	v, err := r.lookup(name)
	if err != nil {
		return common.Address{}, err
	}
	return AsAddress(v)
}

func (r Result) Hash(name string) (common.Hash, error) {
	v, err := r.lookup(name)
	if err != nil {
		return common.Hash{}, err
	}
	return AsHash(v)
}

func (r Result) Bytes(name string) ([]byte, error) {
	v, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return AsBytes(v)
}

func AsBigInt(v interface{}) (*big.Int, error) {
	x, ok := v.(*big.Int)
	if !ok {
		return nil, errors.Wrapf(MalformedEncoding, "%T is not an integer", v)
	}
	return x, nil
}

func AsAddress(v interface{}) (common.Address, error) {
	x, ok := v.(common.Address)
	if !ok {
		return common.Address{}, errors.Wrapf(MalformedEncoding, "%T is not an address", v)
	}
	return x, nil
}

func AsHash(v interface{}) (common.Hash, error) {
	x, ok := v.(common.Hash)
	if !ok {
		return common.Hash{}, errors.Wrapf(MalformedEncoding, "%T is not bytes32", v)
	}
	return x, nil
}

func AsBytes(v interface{}) ([]byte, error) {
	x, ok := v.([]byte)
	if !ok {
		return nil, errors.Wrapf(MalformedEncoding, "%T is not bytes", v)
	}
	return x, nil
}

// MarshalJSON prints a scalar as its bare value and fields as an object in
// declaration order. Integers are decimal strings and byte strings are 0x hex.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.kind == KindScalar && len(r.fields) != 0 {
		return json.Marshal(jsonValue(r.fields[0].Value))
	}
	return marshalFields(r.fields)
}

func marshalFields(fields []Field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(fieldKey(i, f))
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(jsonValue(f.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type orderedFields []Field

func (o orderedFields) MarshalJSON() ([]byte, error) {
	return marshalFields(o)
}

func jsonValue(v interface{}) interface{} {
	switch x := v.(type) {
	case *big.Int:
		return x.String()
	case []byte:
		return hexutil.Bytes(x)
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = jsonValue(e)
		}
		return out
	case []Field:
		return orderedFields(x)
	}
	return v
}
