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

package ast_test

import (
	"fmt"

	"github.com/gteal/gteal/ast"
	"github.com/gteal/gteal/compiler"
)

func ExampleGlobal() {
	options := compiler.NewOptions(compiler.ModeSignature, 2)

	block, err := ast.GroupSize().Lower(options)
	if err != nil {
		panic(err)
	}

	fmt.Println(block.Instructions()[0].Assemble())
	// Output: global GroupSize
}

func ExampleEnumInt() {
	options := compiler.DefaultOptions()

	block, err := ast.OptIn.Lower(options)
	if err != nil {
		panic(err)
	}

	fmt.Println(block.Instructions()[0].Assemble())
	// Output: int 1
}

func ExampleGlobal_unsupportedVersion() {
	options := compiler.NewOptions(compiler.ModeSignature, 2)

	_, err := ast.CreatorAddress().Lower(options)
	fmt.Println(err)
	// Output: cannot use `CreatorAddress` in TEAL v2: requires TEAL v3 or higher
}
