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

package ir

import (
	"fmt"
	"strings"
)

// Node is the source an instruction was lowered from.
// It is a non-owning back-reference used only for diagnostics,
// and must never be used to mutate the source.
type Node interface {
	fmt.Stringer
}

// Instruction is a single TEAL instruction:
// an op and its ordered literal operands.
type Instruction struct {
	Op     Op
	Args   []any
	Source Node
}

func NewInstruction(source Node, op Op, args ...any) Instruction {
	return Instruction{
		Op:     op,
		Args:   args,
		Source: source,
	}
}

// Assemble returns the canonical assembly form of the instruction,
// e.g. "global GroupSize" or "int 1"
func (i Instruction) Assemble() string {
	var sb strings.Builder
	sb.WriteString(i.Op.Mnemonic())
	for _, arg := range i.Args {
		sb.WriteByte(' ')
		_, _ = fmt.Fprint(&sb, arg)
	}
	return sb.String()
}

// Equal returns true if the two instructions have the same content,
// i.e. the same op and the same operands.
// The source back-references are intentionally not compared:
// instructions lowered from different nodes may still be equal.
func (i Instruction) Equal(other Instruction) bool {
	if i.Op != other.Op {
		return false
	}
	if len(i.Args) != len(other.Args) {
		return false
	}
	for index, arg := range i.Args {
		if fmt.Sprint(arg) != fmt.Sprint(other.Args[index]) {
			return false
		}
	}
	return true
}

func (i Instruction) String() string {
	return i.Assemble()
}
