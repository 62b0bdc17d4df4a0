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
	"math/big"

	"github.com/turbolent/prettier"

	"github.com/gteal/gteal/compiler"
	"github.com/gteal/gteal/ir"
	"github.com/gteal/gteal/types"
)

const maxArgIndex = 255

// Arg is an expression that references an argument
// passed to a logic-signature program.
//
// Arguments only exist in signature mode,
// so lowering in application mode fails.
type Arg struct {
	Index uint64
}

var _ Expr = &Arg{}

// NewArg creates an expression referencing the argument
// at the given index. The index must be in [0, 256).
func NewArg(index uint64) (*Arg, error) {
	if index > maxArgIndex {
		return nil, &InvalidLiteralRangeError{
			Value: new(big.Int).SetUint64(index),
			Min:   big.NewInt(0),
			Max:   big.NewInt(maxArgIndex),
		}
	}
	return &Arg{
		Index: index,
	}, nil
}

func (*Arg) isExpr() {}

func (e *Arg) TypeOf() types.TealType {
	return types.TypeBytes
}

func (e *Arg) Lower(options compiler.Options) (*ir.Block, error) {
	if options.Mode != compiler.ModeSignature {
		return nil, &compiler.UnsupportedModeError{
			Name: ir.OpArg.Mnemonic(),
			Mode: options.Mode,
		}
	}

	err := compiler.VerifyOpVersion(ir.OpArg, options.Version)
	if err != nil {
		return nil, err
	}

	instruction := ir.NewInstruction(e, ir.OpArg, e.Index)
	return ir.FromInstruction(instruction), nil
}

func (e *Arg) String() string {
	return fmt.Sprintf("(Arg %d)", e.Index)
}

func (e *Arg) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("arg"),
		prettier.Space,
		prettier.Text(fmt.Sprint(e.Index)),
	}
}
