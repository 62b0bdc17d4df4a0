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

// Package compiler contains the target configuration a program
// is lowered against, and the checks that gate lowering on it.
package compiler

//go:generate go run golang.org/x/tools/cmd/stringer -type=Mode -trimprefix=Mode

const (
	// MinTealVersion is the lowest TEAL version programs can target
	MinTealVersion uint64 = 2

	// MaxTealVersion is the highest TEAL version this library supports
	MaxTealVersion uint64 = 3

	// DefaultTealVersion is the version targeted
	// when the caller does not request one
	DefaultTealVersion uint64 = MinTealVersion
)

// Mode is the execution mode a program is compiled for.
type Mode uint8

const (
	// ModeSignature is the mode of programs
	// that approve or reject a logic-signature transaction
	ModeSignature Mode = iota

	// ModeApplication is the mode of programs
	// that run as part of an application call
	ModeApplication
)

// Options carries the target configuration of one lowering pass:
// the TEAL version and the execution mode to compile for.
//
// Options are read by expression nodes during lowering
// and are never mutated by them.
type Options struct {
	Version uint64
	Mode    Mode
}

func NewOptions(mode Mode, version uint64) Options {
	return Options{
		Version: version,
		Mode:    mode,
	}
}

func DefaultOptions() Options {
	return NewOptions(ModeSignature, DefaultTealVersion)
}
