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
	"testing"

	"github.com/stretchr/testify/assert"
)

type testNode string

func (n testNode) String() string {
	return string(n)
}

func TestInstructionAssemble(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"global GroupSize",
		NewInstruction(nil, OpGlobal, "GroupSize").Assemble(),
	)
	assert.Equal(t,
		"int 18446744073709551615",
		NewInstruction(nil, OpInt, uint64(18446744073709551615)).Assemble(),
	)
	assert.Equal(t,
		"return",
		NewInstruction(nil, OpReturn).Assemble(),
	)
	assert.Equal(t,
		"substring 2 4",
		NewInstruction(nil, OpSubstring, uint64(2), uint64(4)).Assemble(),
	)
}

func TestInstructionEqual(t *testing.T) {
	t.Parallel()

	t.Run("equal content, different sources", func(t *testing.T) {
		t.Parallel()

		first := NewInstruction(testNode("a"), OpInt, uint64(1))
		second := NewInstruction(testNode("b"), OpInt, uint64(1))

		assert.True(t, first.Equal(second))
	})

	t.Run("different ops", func(t *testing.T) {
		t.Parallel()

		first := NewInstruction(nil, OpInt, uint64(1))
		second := NewInstruction(nil, OpArg, uint64(1))

		assert.False(t, first.Equal(second))
	})

	t.Run("different operands", func(t *testing.T) {
		t.Parallel()

		first := NewInstruction(nil, OpInt, uint64(1))
		second := NewInstruction(nil, OpInt, uint64(2))

		assert.False(t, first.Equal(second))
	})

	t.Run("different operand counts", func(t *testing.T) {
		t.Parallel()

		first := NewInstruction(nil, OpSubstring, uint64(2))
		second := NewInstruction(nil, OpSubstring, uint64(2), uint64(4))

		assert.False(t, first.Equal(second))
	})
}

func TestInstructionString(t *testing.T) {
	t.Parallel()

	instruction := NewInstruction(nil, OpGlobal, "Round")
	assert.Equal(t, "global Round", instruction.String())
}
