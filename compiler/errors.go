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

package compiler

import (
	"fmt"

	"github.com/gteal/gteal/errors"
)

// UnsupportedVersionError

// UnsupportedVersionError is reported when a field or op exists
// but is not available under the requested target version.
type UnsupportedVersionError struct {
	Name       string
	MinVersion uint64
	Version    uint64
}

var _ errors.UserError = &UnsupportedVersionError{}
var _ errors.SecondaryError = &UnsupportedVersionError{}

func (*UnsupportedVersionError) IsUserError() {}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf(
		"cannot use `%s` in TEAL v%d: requires TEAL v%d or higher",
		e.Name,
		e.Version,
		e.MinVersion,
	)
}

func (e *UnsupportedVersionError) SecondaryError() string {
	return fmt.Sprintf(
		"`%s` was introduced in TEAL v%d, but the program targets TEAL v%d",
		e.Name,
		e.MinVersion,
		e.Version,
	)
}

// UnsupportedModeError

// UnsupportedModeError is reported when an expression is lowered
// for an execution mode it is not available in.
type UnsupportedModeError struct {
	Name string
	Mode Mode
}

var _ errors.UserError = &UnsupportedModeError{}

func (*UnsupportedModeError) IsUserError() {}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf(
		"cannot use `%s` in %s mode",
		e.Name,
		e.Mode,
	)
}
