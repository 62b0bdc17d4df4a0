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
	"fmt"
	"strings"
	"text/tabwriter"
)

// PrintInstructions writes a human-readable listing of the instructions
// to the builder, one instruction per line, with the instruction offset,
// mnemonic, and operands in aligned columns.
func PrintInstructions(
	builder *strings.Builder,
	instructions []Instruction,
) {
	tabWriter := tabwriter.NewWriter(builder, 0, 0, 1, ' ', tabwriter.AlignRight)

	for offset, instruction := range instructions {

		var operandsBuilder strings.Builder
		for i, arg := range instruction.Args {
			if i > 0 {
				operandsBuilder.WriteByte(' ')
			}
			_, _ = fmt.Fprint(&operandsBuilder, arg)
		}

		_, _ = fmt.Fprintf(
			tabWriter,
			"%d |\t%s |\t%s\n",
			offset,
			instruction.Op.Mnemonic(),
			operandsBuilder.String(),
		)
	}

	_ = tabWriter.Flush()
}

// PrintBlocks writes a listing of the given block and all blocks
// reachable through successor links, in link order.
func PrintBlocks(
	builder *strings.Builder,
	block *Block,
) {
	var instructions []Instruction
	for ; block != nil; block = block.Next() {
		instructions = append(instructions, block.Instructions()...)
	}
	PrintInstructions(builder, instructions)
}
