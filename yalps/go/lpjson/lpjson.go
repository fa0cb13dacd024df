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

// Package lpjson reads models and writes solutions in JSON.
//
// A model is a JSON object:
//
//	{
//	  "direction": "maximize",
//	  "objective": "profit",
//	  "constraints": {"wood": {"max": 300}, "labor": {"max": 110}},
//	  "variables": {
//	    "table": {"wood": 30, "labor": 5, "profit": 1200},
//	    "dresser": {"wood": 20, "labor": 10, "profit": 1600}
//	  },
//	  "integers": ["table", "dresser"]
//	}
//
// "constraints", "variables" and the coefficients of each variable may be given either as an
// object or as a list of `[key, value]` pairs. Both are taken in document order.
// "integers" and "binaries" are either a list of variable keys or `true` for every variable.
// Wherever a number is expected, the strings "Infinity", "-Infinity" and "NaN" stand for the
// non-finite values JSON cannot represent.
package lpjson

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Ivordir/yalps/yalps/go/lpmodel"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrFormat holds the error when a JSON document does not describe a model.
var ErrFormat = errors.New("lpjson: invalid format")

// Model is a model keyed by strings, as read from JSON.
type Model = lpmodel.Model[string, string]

// Solution is a solution keyed by strings.
type Solution = lpmodel.Solution[string]

// Decode parses the JSON model `data`. Objects keep the order of their keys in `data`.
func Decode(data []byte) (*Model, error) {
	s, order, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return order.model(s)
}

// ModelFromStruct converts a JSON object held in `s` into a model. A Struct does not record the
// order of its fields, so objects are taken in key order.
func ModelFromStruct(s *structpb.Struct) (*Model, error) {
	return keyOrder(nil).model(s)
}

func (o keyOrder) model(s *structpb.Struct) (*Model, error) {
	m := &Model{}
	for key, v := range s.GetFields() {
		var err error
		switch key {
		case "direction":
			m.Direction, err = direction(v)
		case "objective":
			if _, isNull := v.GetKind().(*structpb.Value_NullValue); !isNull {
				var obj string
				obj, err = str(v)
				m.Objective = &obj
			}
		case "constraints":
			m.Constraints, err = o.constraints(v)
		case "variables":
			m.Variables, err = o.variables(v)
		case "integers":
			m.Integers, err = flags(v)
		case "binaries":
			m.Binaries, err = flags(v)
		default:
			err = errors.New("unknown field")
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrFormat, key, err)
		}
	}
	return m, nil
}

// entry is one keyed element of an object or a pair list.
type entry struct {
	key   string
	value *structpb.Value
}

// entries returns the elements of an object in document order, or of a pair list in list order.
// Objects missing from `o` are taken in key order.
func (o keyOrder) entries(v *structpb.Value) ([]entry, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_StructValue:
		fields := k.StructValue.GetFields()
		es := make([]entry, 0, len(fields))
		if keys, ok := o[k.StructValue]; ok {
			for _, key := range keys {
				es = append(es, entry{key: key, value: fields[key]})
			}
			return es, nil
		}
		for key, value := range fields {
			es = append(es, entry{key: key, value: value})
		}
		sort.Slice(es, func(i, j int) bool { return es[i].key < es[j].key })
		return es, nil
	case *structpb.Value_ListValue:
		items := k.ListValue.GetValues()
		es := make([]entry, len(items))
		for i, item := range items {
			pair := item.GetListValue().GetValues()
			if len(pair) != 2 {
				return nil, fmt.Errorf("element %v is not a [key, value] pair", i)
			}
			key, err := str(pair[0])
			if err != nil {
				return nil, fmt.Errorf("element %v: %v", i, err)
			}
			es[i] = entry{key: key, value: pair[1]}
		}
		return es, nil
	default:
		return nil, errors.New("want an object or a list of [key, value] pairs")
	}
}

func direction(v *structpb.Value) (lpmodel.Direction, error) {
	s, err := str(v)
	if err != nil {
		return 0, err
	}
	switch s {
	case "maximize":
		return lpmodel.Maximize, nil
	case "minimize":
		return lpmodel.Minimize, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func (o keyOrder) constraints(v *structpb.Value) ([]lpmodel.ConstraintEntry[string], error) {
	es, err := o.entries(v)
	if err != nil {
		return nil, err
	}
	cs := make([]lpmodel.ConstraintEntry[string], len(es))
	for i, e := range es {
		bounds := e.value.GetStructValue()
		if bounds == nil {
			return nil, fmt.Errorf("constraint %q is not an object", e.key)
		}
		cs[i].Key = e.key
		for name, bound := range bounds.GetFields() {
			f, err := number(bound)
			if err != nil {
				return nil, fmt.Errorf("constraint %q: %q: %v", e.key, name, err)
			}
			switch name {
			case "equal":
				cs[i].Constraint.Equal = &f
			case "min":
				cs[i].Constraint.Min = &f
			case "max":
				cs[i].Constraint.Max = &f
			default:
				return nil, fmt.Errorf("constraint %q has unknown bound %q", e.key, name)
			}
		}
	}
	return cs, nil
}

func (o keyOrder) variables(v *structpb.Value) ([]lpmodel.VariableEntry[string, string], error) {
	es, err := o.entries(v)
	if err != nil {
		return nil, err
	}
	vs := make([]lpmodel.VariableEntry[string, string], len(es))
	for i, e := range es {
		coefs, err := o.entries(e.value)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %v", e.key, err)
		}
		vs[i].Key = e.key
		vs[i].Coefficients = make([]lpmodel.Coefficient[string], len(coefs))
		for j, c := range coefs {
			f, err := number(c.value)
			if err != nil {
				return nil, fmt.Errorf("variable %q: %q: %v", e.key, c.key, err)
			}
			vs[i].Coefficients[j] = lpmodel.Coefficient[string]{Key: c.key, Value: f}
		}
	}
	return vs, nil
}

func flags(v *structpb.Value) (lpmodel.Flags[string], error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return lpmodel.Flags[string]{All: k.BoolValue}, nil
	case *structpb.Value_ListValue:
		var keys []string
		for _, item := range k.ListValue.GetValues() {
			key, err := str(item)
			if err != nil {
				return lpmodel.Flags[string]{}, err
			}
			keys = append(keys, key)
		}
		return lpmodel.FlagKeys(keys...), nil
	default:
		return lpmodel.Flags[string]{}, errors.New("want a boolean or a list of variable keys")
	}
}

func str(v *structpb.Value) (string, error) {
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("want a string, got %v", v)
	}
	return s.StringValue, nil
}

// number reads a JSON number or one of the strings standing for a non-finite number.
func number(v *structpb.Value) (float64, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return k.NumberValue, nil
	case *structpb.Value_StringValue:
		switch k.StringValue {
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		case "NaN":
			return math.NaN(), nil
		}
	}
	return 0, fmt.Errorf("want a number, got %v", v)
}

// numberValue is the inverse of number.
func numberValue(f float64) *structpb.Value {
	switch {
	case math.IsNaN(f):
		return structpb.NewStringValue("NaN")
	case math.IsInf(f, 1):
		return structpb.NewStringValue("Infinity")
	case math.IsInf(f, -1):
		return structpb.NewStringValue("-Infinity")
	default:
		return structpb.NewNumberValue(f)
	}
}
