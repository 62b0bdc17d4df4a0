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
	"github.com/gteal/gteal/ir"
)

// VerifyFieldVersion checks that a field with the given canonical name
// and minimum version is available under the requested target version.
//
// Version availability depends on the target configuration,
// so unlike name and range validation it is checked at lowering time,
// not at construction time: the same expression may be lowered
// under different targets.
func VerifyFieldVersion(name string, minVersion uint64, version uint64) error {
	if version < minVersion {
		return &UnsupportedVersionError{
			Name:       name,
			MinVersion: minVersion,
			Version:    version,
		}
	}
	return nil
}

// VerifyOpVersion checks that the op is available
// under the requested target version.
func VerifyOpVersion(op ir.Op, version uint64) error {
	if version < op.MinVersion() {
		return &UnsupportedVersionError{
			Name:       op.Mnemonic(),
			MinVersion: op.MinVersion(),
			Version:    version,
		}
	}
	return nil
}
