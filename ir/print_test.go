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
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func testInstructions() []Instruction {
	return []Instruction{
		NewInstruction(nil, OpGlobal, "LatestTimestamp"),
		NewInstruction(nil, OpInt, uint64(42)),
		NewInstruction(nil, OpByte, "0xdeadbeef"),
		NewInstruction(nil, OpArg, uint64(0)),
	}
}

func TestPrintInstructions(t *testing.T) {
	t.Parallel()

	var builder strings.Builder
	PrintInstructions(&builder, testInstructions())

	const expected = ` 0 | global | LatestTimestamp
 1 |    int | 42
 2 |   byte | 0xdeadbeef
 3 |    arg | 0
`
	assert.Equal(t, expected, builder.String())

	g := goldie.New(t)
	g.Assert(t, "instructions", []byte(builder.String()))
}

func TestPrintBlocks(t *testing.T) {
	t.Parallel()

	instructions := testInstructions()

	first := NewBlock(instructions[0], instructions[1])
	second := NewBlock(instructions[2], instructions[3])
	first.SetNext(second)

	var wholeChain strings.Builder
	PrintBlocks(&wholeChain, first)

	var flat strings.Builder
	PrintInstructions(&flat, instructions)

	assert.Equal(t, flat.String(), wholeChain.String())
}
