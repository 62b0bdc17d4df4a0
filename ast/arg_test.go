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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gteal/gteal/compiler"
	"github.com/gteal/gteal/types"
)

func TestArgConstruction(t *testing.T) {
	t.Parallel()

	t.Run("valid indices", func(t *testing.T) {
		t.Parallel()

		for _, index := range []uint64{0, 1, 255} {
			arg, err := NewArg(index)
			require.NoError(t, err)
			assert.Equal(t, index, arg.Index)
			assert.Equal(t, types.TypeBytes, arg.TypeOf())
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()

		_, err := NewArg(256)

		var rangeErr *InvalidLiteralRangeError
		require.ErrorAs(t, err, &rangeErr)
	})
}

func TestArgLowering(t *testing.T) {
	t.Parallel()

	arg, err := NewArg(0)
	require.NoError(t, err)

	t.Run("signature mode", func(t *testing.T) {
		t.Parallel()

		block, err := arg.Lower(compiler.NewOptions(compiler.ModeSignature, 2))
		require.NoError(t, err)

		instructions := block.Instructions()
		require.Len(t, instructions, 1)
		assert.Equal(t, "arg 0", instructions[0].Assemble())
	})

	t.Run("application mode", func(t *testing.T) {
		t.Parallel()

		_, err := arg.Lower(compiler.NewOptions(compiler.ModeApplication, 2))

		var modeErr *compiler.UnsupportedModeError
		require.ErrorAs(t, err, &modeErr)
		assert.Equal(t, "arg", modeErr.Name)
		assert.Equal(t, compiler.ModeApplication, modeErr.Mode)
		assert.Equal(t, "cannot use `arg` in Application mode", modeErr.Error())
	})
}

func TestArgStringer(t *testing.T) {
	t.Parallel()

	arg, err := NewArg(3)
	require.NoError(t, err)
	assert.Equal(t, "(Arg 3)", arg.String())
}
