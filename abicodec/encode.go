package abicodec

import (
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Encode is the inverse of DecodeBytes: it accepts values in the same forms
// decoding produces (*big.Int integers, common.Hash for bytes32, []Field for
// tuples, []interface{} for arrays) and returns their ABI encoding.
func Encode(schema Schema, values ...interface{}) ([]byte, error) {
	if len(values) != len(schema) {
		return nil, errors.Errorf("schema %s takes %d values, got %d", schema, len(schema), len(values))
	}
	args := make([]interface{}, len(values))
	for i, v := range values {
		goVal, err := toGoValue(schema[i].Type, v)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %d (%s)", i, schema[i].Type.String())
		}
		args[i] = goVal
	}
	return schema.arguments().Pack(args...)
}

// EncodeCall prefixes the encoded arguments with selector.
func EncodeCall(selector Selector, schema Schema, values ...interface{}) ([]byte, error) {
	payload, err := Encode(schema, values...)
	if err != nil {
		return nil, err
	}
	return append(selector[:], payload...), nil
}

func toGoValue(t abi.Type, v interface{}) (interface{}, error) {
	goType := t.GetType()
	switch t.T {
	case abi.IntTy, abi.UintTy:
		x, ok := v.(*big.Int)
		if !ok {
			break
		}
		if !fitsInt(t, x) {
			return nil, errors.Errorf("%s out of range for %s", x, t.String())
		}
		if goType == bigT {
			return new(big.Int).Set(x), nil
		}
		rv := reflect.New(goType).Elem()
		if t.T == abi.UintTy {
			rv.SetUint(x.Uint64())
		} else {
			rv.SetInt(x.Int64())
		}
		return rv.Interface(), nil
	case abi.BoolTy:
		if x, ok := v.(bool); ok {
			return x, nil
		}
	case abi.StringTy:
		if x, ok := v.(string); ok {
			return x, nil
		}
	case abi.AddressTy:
		if x, ok := v.(common.Address); ok {
			return x, nil
		}
	case abi.BytesTy:
		if x, ok := v.([]byte); ok {
			return x, nil
		}
	case abi.FixedBytesTy, abi.FunctionTy:
		var src []byte
		switch x := v.(type) {
		case common.Hash:
			src = x.Bytes()
		case []byte:
			src = x
		default:
			return nil, errors.Errorf("cannot encode %T as %s", v, t.String())
		}
		rv := reflect.New(goType).Elem()
		if len(src) != rv.Len() {
			return nil, errors.Errorf("%s needs %d bytes, got %d", t.String(), rv.Len(), len(src))
		}
		reflect.Copy(rv, reflect.ValueOf(src))
		return rv.Interface(), nil
	case abi.SliceTy, abi.ArrayTy:
		elems, ok := v.([]interface{})
		if !ok {
			break
		}
		var rv reflect.Value
		if t.T == abi.SliceTy {
			rv = reflect.MakeSlice(goType, len(elems), len(elems))
		} else {
			if len(elems) != t.Size {
				return nil, errors.Errorf("%s needs %d elements, got %d", t.String(), t.Size, len(elems))
			}
			rv = reflect.New(goType).Elem()
		}
		for i, e := range elems {
			ev, err := toGoValue(*t.Elem, e)
			if err != nil {
				return nil, errors.Wrapf(err, "element %d", i)
			}
			rv.Index(i).Set(reflect.ValueOf(ev))
		}
		return rv.Interface(), nil
	case abi.TupleTy:
		fields, ok := v.([]Field)
		if !ok {
			break
		}
		if len(fields) != len(t.TupleElems) {
			return nil, errors.Errorf("%s needs %d fields, got %d", t.String(), len(t.TupleElems), len(fields))
		}
		rv := reflect.New(t.TupleType).Elem()
		for i, elem := range t.TupleElems {
			ev, err := toGoValue(*elem, fields[i].Value)
			if err != nil {
				return nil, errors.Wrapf(err, "field %s", t.TupleRawNames[i])
			}
			rv.Field(i).Set(reflect.ValueOf(ev))
		}
		return rv.Interface(), nil
	}
	return nil, errors.Errorf("cannot encode %T as %s", v, t.String())
}

func fitsInt(t abi.Type, x *big.Int) bool {
	if t.T == abi.UintTy {
		return x.Sign() >= 0 && x.BitLen() <= t.Size
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	if x.Sign() >= 0 {
		return x.Cmp(limit) < 0
	}
	return x.Cmp(new(big.Int).Neg(limit)) >= 0
}
