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

// Block is a straight-line sequence of instructions with a single
// optional successor. Lowering a leaf expression produces a block
// with exactly one instruction and no successor; a block assembler
// links blocks into a program graph through SetNext.
type Block struct {
	instructions []Instruction
	next         *Block
}

func NewBlock(instructions ...Instruction) *Block {
	return &Block{
		instructions: instructions,
	}
}

// FromInstruction wraps a single lowered instruction
// into its own block.
func FromInstruction(instruction Instruction) *Block {
	return NewBlock(instruction)
}

func (b *Block) Instructions() []Instruction {
	return b.instructions
}

// Next returns the successor block, if any.
func (b *Block) Next() *Block {
	return b.next
}

// SetNext links the given block as the successor of this block.
func (b *Block) SetNext(next *Block) {
	b.next = next
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, instruction := range b.instructions {
		if i > 0 {
			sb.WriteString(", ")
		}
		_, _ = fmt.Fprint(&sb, instruction)
	}
	sb.WriteByte(']')
	return sb.String()
}
