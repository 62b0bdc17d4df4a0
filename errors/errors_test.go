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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUserError(t *testing.T) {
	t.Parallel()

	userErr := NewDefaultUserError("bad literal: %d", 42)
	assert.Equal(t, "bad literal: 42", userErr.Error())
	assert.True(t, IsUserError(userErr))
	assert.False(t, IsInternalError(userErr))

	wrapped := fmt.Errorf("construction failed: %w", userErr)
	assert.True(t, IsUserError(wrapped))
}

func TestIsInternalError(t *testing.T) {
	t.Parallel()

	internalErr := NewUnexpectedError("invalid state: %s", "x")
	assert.True(t, IsInternalError(internalErr))
	assert.False(t, IsUserError(internalErr))

	wrapped := fmt.Errorf("lowering failed: %w", internalErr)
	assert.True(t, IsInternalError(wrapped))
}

func TestUnreachableError(t *testing.T) {
	t.Parallel()

	err := NewUnreachableError()
	assert.True(t, IsInternalError(err))
	assert.Contains(t, err.Error(), "unreachable")
	assert.NotEmpty(t, err.Stack)
}
