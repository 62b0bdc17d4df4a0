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

// Package ast contains the expression nodes of TEAL programs.
// All nodes implement the Expr interface, are immutable after
// construction, and lower to instruction-sequence IR through Lower.
//
// Structural validation (names, ranges, encodings) happens at
// construction time, so that a successfully constructed node only
// fails to lower for reasons that depend on the target configuration
// (version and mode).
package ast

import (
	"github.com/turbolent/prettier"

	"github.com/gteal/gteal/compiler"
	"github.com/gteal/gteal/ir"
	"github.com/gteal/gteal/types"
)

// Expr is the contract every expression node implements.
//
// Nodes outside this package, e.g. composing arithmetic or
// control-flow nodes, embed sub-expressions through this interface.
type Expr interface {
	ir.Node

	// TypeOf returns the type the lowered expression leaves on the stack.
	// The result is structural: it never depends on the target options,
	// and calling Lower does not change it.
	TypeOf() types.TealType

	// Lower converts the expression into IR under the given target options.
	// Lowering has no side effects beyond the returned block:
	// lowering the same node under the same options twice
	// produces blocks with identical instruction content.
	Lower(options compiler.Options) (*ir.Block, error)

	// Doc returns a pretty-printable document of the expression,
	// used only for diagnostics
	Doc() prettier.Doc

	isExpr()
}
