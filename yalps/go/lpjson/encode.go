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
	"fmt"

	"github.com/Ivordir/yalps/yalps/go/lpmodel"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var marshalOptions = protojson.MarshalOptions{Multiline: true, Indent: "  "}

// SolutionToStruct converts `sol` into a JSON object of the form
//
//	{"status": "optimal", "result": 14400, "variables": [["table", 8], ["dresser", 3]]}
func SolutionToStruct(sol Solution) *structpb.Struct {
	vars := make([]*structpb.Value, len(sol.Variables))
	for i, v := range sol.Variables {
		vars[i] = pair(v.Key, numberValue(v.Value))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"status":    structpb.NewStringValue(sol.Status.String()),
		"result":    numberValue(sol.Result),
		"variables": structpb.NewListValue(&structpb.ListValue{Values: vars}),
	}}
}

// EncodeSolution returns `sol` as indented JSON.
func EncodeSolution(sol Solution) ([]byte, error) {
	return marshalOptions.Marshal(SolutionToStruct(sol))
}

// ModelToStruct converts `m` into a JSON object that ModelFromStruct reads back into an equal
// model. Constraints, variables and coefficients are written as pair lists to keep their order.
func ModelToStruct(m *Model) (*structpb.Struct, error) {
	fields := map[string]*structpb.Value{
		"direction": structpb.NewStringValue(m.Direction.String()),
	}
	switch m.Direction {
	case lpmodel.Maximize, lpmodel.Minimize:
	default:
		return nil, fmt.Errorf("%w: unknown direction %v", ErrFormat, m.Direction)
	}
	if m.Objective != nil {
		fields["objective"] = structpb.NewStringValue(*m.Objective)
	}

	cs := make([]*structpb.Value, len(m.Constraints))
	for i, c := range m.Constraints {
		bounds := map[string]*structpb.Value{}
		if c.Constraint.Equal != nil {
			bounds["equal"] = numberValue(*c.Constraint.Equal)
		}
		if c.Constraint.Min != nil {
			bounds["min"] = numberValue(*c.Constraint.Min)
		}
		if c.Constraint.Max != nil {
			bounds["max"] = numberValue(*c.Constraint.Max)
		}
		cs[i] = pair(c.Key, structpb.NewStructValue(&structpb.Struct{Fields: bounds}))
	}
	fields["constraints"] = structpb.NewListValue(&structpb.ListValue{Values: cs})

	vs := make([]*structpb.Value, len(m.Variables))
	for i, v := range m.Variables {
		coefs := make([]*structpb.Value, len(v.Coefficients))
		for j, c := range v.Coefficients {
			coefs[j] = pair(c.Key, numberValue(c.Value))
		}
		vs[i] = pair(v.Key, structpb.NewListValue(&structpb.ListValue{Values: coefs}))
	}
	fields["variables"] = structpb.NewListValue(&structpb.ListValue{Values: vs})

	fields["integers"] = flagsValue(m.Integers)
	fields["binaries"] = flagsValue(m.Binaries)
	return &structpb.Struct{Fields: fields}, nil
}

// EncodeModel returns `m` as indented JSON.
func EncodeModel(m *Model) ([]byte, error) {
	s, err := ModelToStruct(m)
	if err != nil {
		return nil, err
	}
	return marshalOptions.Marshal(s)
}

func pair(key string, v *structpb.Value) *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{structpb.NewStringValue(key), v}})
}

func flagsValue(f lpmodel.Flags[string]) *structpb.Value {
	if f.All {
		return structpb.NewBoolValue(true)
	}
	keys := make([]*structpb.Value, len(f.Keys))
	for i, k := range f.Keys {
		keys[i] = structpb.NewStringValue(k)
	}
	return structpb.NewListValue(&structpb.ListValue{Values: keys})
}
