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

// Package types contains the type model of TEAL expressions.
// Every expression node is statically tagged with the TealType
// its lowered instructions leave on the stack.
package types

//go:generate go run golang.org/x/tools/cmd/stringer -type=TealType -trimprefix=Type

type TealType uint8

const (
	// TypeNone is the type of expressions that leave nothing on the stack,
	// e.g. statement-like nodes
	TypeNone TealType = iota

	// TypeUint64 is the type of 64-bit unsigned integer values
	TypeUint64

	// TypeBytes is the type of byte-string values
	TypeBytes

	// TypeAny matches any value-producing type.
	// It is only used by composing nodes whose result type
	// depends on their sub-expressions, never by leaf nodes
	TypeAny
)

// TypesMatch returns true if the two types are compatible:
// either they are equal, or one of them is TypeAny.
// TypeNone only matches itself.
func TypesMatch(a, b TealType) bool {
	if a == TypeNone || b == TypeNone {
		return a == b
	}
	return a == b || a == TypeAny || b == TypeAny
}
