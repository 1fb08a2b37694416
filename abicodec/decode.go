package abicodec

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Decode decodes a 0x-prefixed hex blob against schema. "0x" is what a
// reverted or empty eth_call returns and is rejected with EmptyResult.
func Decode(schema Schema, blobHex string) (Result, error) {
	if blobHex == "" || blobHex == "0x" {
		return Result{}, EmptyResult
	}
	data, err := hexutil.Decode(blobHex)
	if err != nil {
		return Result{}, errors.Wrap(MalformedEncoding, err.Error())
	}
	return DecodeBytes(schema, data)
}

// DecodeBytes decodes data against schema with the standard head/tail rules.
// Integers of every width come back as *big.Int and byte strings are copied,
// so the result never aliases data. A bytes value may itself be fed back into
// DecodeBytes when it carries another ABI encoding.
func DecodeBytes(schema Schema, data []byte) (res Result, err error) {
	if len(data) == 0 {
		return Result{}, EmptyResult
	}
	defer func() {
		if r := recover(); r != nil {
			res, err = Result{}, errors.Wrap(MalformedEncoding, fmt.Sprint(r))
		}
	}()

	raw, err := schema.arguments().UnpackValues(data)
	if err != nil {
		return Result{}, errors.Wrap(MalformedEncoding, err.Error())
	}
	values := make([]interface{}, len(raw))
	for i, v := range raw {
		values[i], err = normalize(schema[i].Type, v)
		if err != nil {
			return Result{}, errors.Wrapf(err, "parameter %d (%s)", i, schema[i].Type.String())
		}
	}
	return newResult(schema, values), nil
}

// DecodeMethodReturn decodes the return data of an eth_call to method.
func DecodeMethodReturn(reg *Registry, method string, returnHex string) (Result, error) {
	if returnHex == "" || returnHex == "0x" {
		return Result{}, EmptyResult
	}
	outputs, err := reg.Outputs(method)
	if err != nil {
		return Result{}, err
	}
	return Decode(outputs, returnHex)
}

// DecodeCallInput decodes the arguments of a call to method found in callData.
// The method selector may sit anywhere in callData; see SplitAtSelector.
func DecodeCallInput(reg *Registry, method string, callData []byte) (Result, error) {
	m, err := reg.Method(method)
	if err != nil {
		return Result{}, err
	}
	payload, err := SplitAtSelector(callData, m.Selector)
	if err != nil {
		return Result{}, err
	}
	return DecodeBytes(m.Inputs, payload)
}

var bigT = reflect.TypeOf((*big.Int)(nil))

func normalize(t abi.Type, v interface{}) (interface{}, error) {
	rv := reflect.ValueOf(v)
	switch t.T {
	case abi.IntTy, abi.UintTy:
		if x, ok := v.(*big.Int); ok {
			return new(big.Int).Set(x), nil
		}
		switch rv.Kind() {
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return new(big.Int).SetUint64(rv.Uint()), nil
		case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return big.NewInt(rv.Int()), nil
		}
	case abi.BoolTy, abi.StringTy, abi.AddressTy:
		return v, nil
	case abi.BytesTy:
		src, ok := v.([]byte)
		if !ok {
			break
		}
		return append([]byte{}, src...), nil
	case abi.FixedBytesTy, abi.FunctionTy:
		if rv.Kind() != reflect.Array {
			break
		}
		out := make([]byte, rv.Len())
		for i := range out {
			out[i] = byte(rv.Index(i).Uint())
		}
		if t.T == abi.FixedBytesTy && t.Size == common.HashLength {
			return common.BytesToHash(out), nil
		}
		return out, nil
	case abi.SliceTy, abi.ArrayTy:
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			break
		}
		out := make([]interface{}, rv.Len())
		for i := range out {
			elem, err := normalize(*t.Elem, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = elem
		}
		return out, nil
	case abi.TupleTy:
		if rv.Kind() == reflect.Ptr {
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct || rv.NumField() != len(t.TupleElems) {
			break
		}
		fields := make([]Field, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			val, err := normalize(*elem, rv.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			fields[i] = Field{Name: t.TupleRawNames[i], Value: val}
		}
		return fields, nil
	}
	return nil, errors.Wrapf(MalformedEncoding, "cannot decode %s into %T", t.String(), v)
}
