/*
 * GTeal - A Go embedded DSL for Algorand TEAL smart contracts
 *
 * Copyright GTeal Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"fmt"
	"sort"

	"github.com/turbolent/prettier"

	"github.com/gteal/gteal/compiler"
	"github.com/gteal/gteal/errors"
	"github.com/gteal/gteal/ir"
	"github.com/gteal/gteal/types"
)

// intEnumValues maps symbolic enum names to their uint64 values.
//
// NOTE: completion-action and transaction-type names share
// one flat namespace, and their values overlap.
var intEnumValues = map[string]uint64{
	// OnComplete values
	"NoOp":              0,
	"OptIn":             1,
	"CloseOut":          2,
	"ClearState":        3,
	"UpdateApplication": 4,
	"DeleteApplication": 5,
	// TxnType values
	"unknown": 0,
	"pay":     1,
	"keyreg":  2,
	"acfg":    3,
	"axfer":   4,
	"afrz":    5,
	"appl":    6,
}

// IntEnumValueByName looks up an enum value by its symbolic name.
func IntEnumValueByName(name string) (uint64, error) {
	value, ok := intEnumValues[name]
	if !ok {
		return 0, &UnknownEnumValueError{Name: name}
	}
	return value, nil
}

// IntEnumNames returns all symbolic enum names, sorted.
func IntEnumNames() []string {
	names := make([]string, 0, len(intEnumValues))
	for name := range intEnumValues { //nolint:maprange
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnumInt

// EnumInt is an expression that references a uint64 enum constant
// by its symbolic name. The name is resolved at construction time,
// so an invalid name fails fast; the name is erased during lowering,
// and the emitted instruction is indistinguishable from that of an
// Int with the resolved value.
type EnumInt struct {
	Name  string
	value uint64
}

var _ Expr = &EnumInt{}

func NewEnumInt(name string) (*EnumInt, error) {
	value, err := IntEnumValueByName(name)
	if err != nil {
		return nil, err
	}
	return &EnumInt{
		Name:  name,
		value: value,
	}, nil
}

// Value returns the resolved enum value.
func (e *EnumInt) Value() uint64 {
	return e.value
}

func (*EnumInt) isExpr() {}

func (e *EnumInt) TypeOf() types.TealType {
	return types.TypeUint64
}

func (e *EnumInt) Lower(_ compiler.Options) (*ir.Block, error) {
	instruction := ir.NewInstruction(e, ir.OpInt, e.value)
	return ir.FromInstruction(instruction), nil
}

func (e *EnumInt) String() string {
	return fmt.Sprintf("(IntEnum: %s)", e.Name)
}

func (e *EnumInt) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("int"),
		prettier.Space,
		prettier.Text(e.Name),
	}
}

func mustEnumInt(name string) *EnumInt {
	e, err := NewEnumInt(name)
	if err != nil {
		panic(errors.NewUnreachableError())
	}
	return e
}

// Completion actions of an application call.
var (
	NoOp              = mustEnumInt("NoOp")
	OptIn             = mustEnumInt("OptIn")
	CloseOut          = mustEnumInt("CloseOut")
	ClearState        = mustEnumInt("ClearState")
	UpdateApplication = mustEnumInt("UpdateApplication")
	DeleteApplication = mustEnumInt("DeleteApplication")
)

// Transaction types.
var (
	TxnTypeUnknown         = mustEnumInt("unknown")
	TxnTypePayment         = mustEnumInt("pay")
	TxnTypeKeyRegistration = mustEnumInt("keyreg")
	TxnTypeAssetConfig     = mustEnumInt("acfg")
	TxnTypeAssetTransfer   = mustEnumInt("axfer")
	TxnTypeAssetFreeze     = mustEnumInt("afrz")
	TxnTypeApplicationCall = mustEnumInt("appl")
)
