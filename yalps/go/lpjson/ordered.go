// Copyright 2026 The YALPS Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lpjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/types/known/structpb"
)

// keyOrder holds the keys of every object of a document in the order they first appear.
type keyOrder map[*structpb.Struct][]string

// parse reads the JSON object `data` into a Struct. Struct fields are a map, so the key order
// of each object is returned alongside.
func parse(data []byte) (*structpb.Struct, keyOrder, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	order := keyOrder{}
	v, err := order.value(dec)
	if err != nil {
		return nil, nil, err
	}
	if tok, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("unexpected %v after the document", tok)
	}
	s := v.GetStructValue()
	if s == nil {
		return nil, nil, fmt.Errorf("want an object, got %v", v)
	}
	return s, order, nil
}

// value reads the next JSON value from `dec`. A key repeated in one object keeps its first
// position and its last value.
func (o keyOrder) value(dec *json.Decoder) (*structpb.Value, error) {
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	}
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			s := &structpb.Struct{Fields: map[string]*structpb.Value{}}
			keys := []string{}
			for dec.More() {
				tok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := tok.(string)
				if !ok {
					return nil, fmt.Errorf("want an object key, got %v", tok)
				}
				v, err := o.value(dec)
				if err != nil {
					return nil, err
				}
				if _, seen := s.Fields[key]; !seen {
					keys = append(keys, key)
				}
				s.Fields[key] = v
			}
			if err := closing(dec); err != nil {
				return nil, err
			}
			o[s] = keys
			return structpb.NewStructValue(s), nil
		case '[':
			l := &structpb.ListValue{}
			for dec.More() {
				v, err := o.value(dec)
				if err != nil {
					return nil, err
				}
				l.Values = append(l.Values, v)
			}
			if err := closing(dec); err != nil {
				return nil, err
			}
			return structpb.NewListValue(l), nil
		}
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return structpb.NewNumberValue(f), nil
	case string:
		return structpb.NewStringValue(t), nil
	case bool:
		return structpb.NewBoolValue(t), nil
	case nil:
		return structpb.NewNullValue(), nil
	}
	return nil, fmt.Errorf("unexpected %v", tok)
}

// closing consumes the delimiter ending an object or a list.
func closing(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	if err != nil {
		return err
	}
	if _, ok := tok.(json.Delim); !ok {
		return errors.New("unterminated object or list")
	}
	return nil
}
