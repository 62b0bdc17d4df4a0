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
	"math"
	"math/big"

	"github.com/turbolent/prettier"

	"github.com/gteal/gteal/compiler"
	"github.com/gteal/gteal/ir"
	"github.com/gteal/gteal/types"
)

// Int is an expression that represents a uint64 constant.
type Int struct {
	Value uint64
}

var _ Expr = &Int{}

// NewInt creates a uint64 constant expression.
func NewInt(value uint64) *Int {
	return &Int{
		Value: value,
	}
}

// NewIntFromBig creates a uint64 constant expression from an
// arbitrary-precision value. The value must be in [0, 2^64).
func NewIntFromBig(value *big.Int) (*Int, error) {
	if value == nil {
		return nil, &InvalidLiteralTypeError{
			Literal:  "nil",
			Expected: "an integer value",
		}
	}
	if !value.IsUint64() {
		return nil, &InvalidLiteralRangeError{
			Value: value,
			Min:   big.NewInt(0),
			Max:   new(big.Int).SetUint64(math.MaxUint64),
		}
	}
	return NewInt(value.Uint64()), nil
}

// NewIntFromString creates a uint64 constant expression from a
// decimal literal. Non-integral input is rejected.
func NewIntFromString(literal string) (*Int, error) {
	value, ok := new(big.Int).SetString(literal, 10)
	if !ok {
		return nil, &InvalidLiteralTypeError{
			Literal:  literal,
			Expected: "a decimal integer literal",
		}
	}
	return NewIntFromBig(value)
}

func (*Int) isExpr() {}

func (e *Int) TypeOf() types.TealType {
	return types.TypeUint64
}

// Lower cannot fail: every representable uint64 is a valid `int`
// constant in every supported TEAL version.
func (e *Int) Lower(_ compiler.Options) (*ir.Block, error) {
	instruction := ir.NewInstruction(e, ir.OpInt, e.Value)
	return ir.FromInstruction(instruction), nil
}

func (e *Int) String() string {
	return fmt.Sprintf("(Int: %d)", e.Value)
}

func (e *Int) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("int"),
		prettier.Space,
		prettier.Text(fmt.Sprint(e.Value)),
	}
}
