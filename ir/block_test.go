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
	"github.com/stretchr/testify/require"
)

func TestBlockFromInstruction(t *testing.T) {
	t.Parallel()

	instruction := NewInstruction(nil, OpInt, uint64(1))
	block := FromInstruction(instruction)

	instructions := block.Instructions()
	require.Len(t, instructions, 1)
	assert.True(t, instruction.Equal(instructions[0]))
	assert.Nil(t, block.Next())
}

func TestBlockLinkage(t *testing.T) {
	t.Parallel()

	first := FromInstruction(NewInstruction(nil, OpInt, uint64(1)))
	second := FromInstruction(NewInstruction(nil, OpPop))

	first.SetNext(second)

	assert.Same(t, second, first.Next())
	assert.Nil(t, second.Next())
}

func TestBlockString(t *testing.T) {
	t.Parallel()

	block := NewBlock(
		NewInstruction(nil, OpInt, uint64(1)),
		NewInstruction(nil, OpPop),
	)

	assert.Equal(t, "[int 1, pop]", block.String())
}
