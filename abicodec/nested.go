package abicodec

import (
	"bytes"

	"github.com/pkg/errors"
)

// SplitAtSelector returns everything after the first occurrence of selector in
// data. The selector is searched for anywhere in data, not only at offset 0:
// call data that went through a proxy or a multicall wraps the inner call, so
// the selector of the call we care about can sit behind other bytes.
// Matching is byte aligned: a selector whose hex digits only appear straddling
// a byte boundary, such as 0x6a791f11 inside 06 a7 91 f1 1.., is not found.
func SplitAtSelector(data []byte, selector Selector) ([]byte, error) {
	i := bytes.Index(data, selector[:])
	if i < 0 {
		return nil, errors.Wrapf(SelectorNotFound, "%s", selector.Hex())
	}
	return data[i+len(selector):], nil
}

// Step decodes the bytes field named Field of the outer result against Schema.
// Field may also be a decimal index for unnamed parameters.
type Step struct {
	Field  string
	Schema Schema
}

type Nested struct {
	Outer Result
	// Inner[i] is the result of steps[i].
	Inner []Result
}

// DecodeNested decodes call data whose arguments carry further ABI encodings
// inside bytes fields: the payload after selector is decoded against outer,
// then each step decodes one of the outer bytes fields from scratch.
func DecodeNested(callData []byte, selector Selector, outer Schema, steps ...Step) (*Nested, error) {
	payload, err := SplitAtSelector(callData, selector)
	if err != nil {
		return nil, err
	}
	outerRes, err := DecodeBytes(outer, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", outer)
	}

	nested := &Nested{Outer: outerRes, Inner: make([]Result, 0, len(steps))}
	for _, step := range steps {
		blob, err := outerRes.Bytes(step.Field)
		if err != nil {
			return nil, err
		}
		inner, err := DecodeBytes(step.Schema, blob)
		if err != nil {
			return nil, errors.Wrapf(err, "decode field %s as %s", step.Field, step.Schema)
		}
		nested.Inner = append(nested.Inner, inner)
	}
	return nested, nil
}
