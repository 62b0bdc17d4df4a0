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

// Package ir contains the instruction-sequence intermediate representation
// that expression nodes lower into: TEAL operations, instructions,
// and the basic blocks a program graph is assembled from.
package ir

import (
	"github.com/gteal/gteal/errors"
)

type Op uint8

const (
	OpUnknown Op = iota

	// Flow control

	OpErr
	OpBnz
	OpBz
	OpB
	OpReturn
	OpAssert

	// Stack manipulation

	OpDup
	OpPop
	OpSwap
	OpDig
	OpSelect

	// Arithmetic, comparison, logic

	OpAdd
	OpMinus
	OpMul
	OpDiv
	OpMod
	OpLt
	OpGt
	OpLe
	OpGe
	OpAnd
	OpOr
	OpEq
	OpNeq
	OpNot
	OpLen
	OpItob
	OpBtoi
	OpAddw
	OpMulw

	// Byte operations

	OpConcat
	OpSubstring
	OpGetbit
	OpSetbit
	OpGetbyte
	OpSetbyte

	// Constant loading

	OpInt
	OpByte
	OpAddr
	OpPushBytes
	OpPushInt

	// Data access

	OpArg
	OpTxn
	OpGtxn
	OpGlobal
	OpLoad
	OpStore
	OpAppGlobalGet
	OpAppGlobalPut
	OpMinBalance

	// NOTE: not an actual op, must be last item
	OpMax
)

// opDescriptor ties an op to its assembly mnemonic
// and the TEAL version that introduced it.
type opDescriptor struct {
	mnemonic   string
	minVersion uint64
}

// NOTE: the minimum version of an op is fixed by the TEAL specification
// at the version the op was introduced and never changes thereafter
var opDescriptors = [OpMax]opDescriptor{
	OpErr:          {"err", 1},
	OpBnz:          {"bnz", 1},
	OpBz:           {"bz", 2},
	OpB:            {"b", 2},
	OpReturn:       {"return", 2},
	OpAssert:       {"assert", 3},
	OpDup:          {"dup", 1},
	OpPop:          {"pop", 1},
	OpSwap:         {"swap", 3},
	OpDig:          {"dig", 3},
	OpSelect:       {"select", 3},
	OpAdd:          {"+", 1},
	OpMinus:        {"-", 1},
	OpMul:          {"*", 1},
	OpDiv:          {"/", 1},
	OpMod:          {"%", 1},
	OpLt:           {"<", 1},
	OpGt:           {">", 1},
	OpLe:           {"<=", 1},
	OpGe:           {">=", 1},
	OpAnd:          {"&&", 1},
	OpOr:           {"||", 1},
	OpEq:           {"==", 1},
	OpNeq:          {"!=", 1},
	OpNot:          {"!", 1},
	OpLen:          {"len", 1},
	OpItob:         {"itob", 1},
	OpBtoi:         {"btoi", 1},
	OpAddw:         {"addw", 2},
	OpMulw:         {"mulw", 1},
	OpConcat:       {"concat", 2},
	OpSubstring:    {"substring", 2},
	OpGetbit:       {"getbit", 3},
	OpSetbit:       {"setbit", 3},
	OpGetbyte:      {"getbyte", 3},
	OpSetbyte:      {"setbyte", 3},
	OpInt:          {"int", 1},
	OpByte:         {"byte", 1},
	OpAddr:         {"addr", 1},
	OpPushBytes:    {"pushbytes", 3},
	OpPushInt:      {"pushint", 3},
	OpArg:          {"arg", 1},
	OpTxn:          {"txn", 1},
	OpGtxn:         {"gtxn", 1},
	OpGlobal:       {"global", 1},
	OpLoad:         {"load", 1},
	OpStore:        {"store", 1},
	OpAppGlobalGet: {"app_global_get", 2},
	OpAppGlobalPut: {"app_global_put", 2},
	OpMinBalance:   {"min_balance", 3},
}

// Mnemonic returns the assembly mnemonic of the op, e.g. "global".
func (op Op) Mnemonic() string {
	if op == OpUnknown || op >= OpMax {
		panic(errors.NewUnexpectedError("invalid op: %d", op))
	}
	return opDescriptors[op].mnemonic
}

// MinVersion returns the TEAL version that introduced the op.
func (op Op) MinVersion() uint64 {
	if op == OpUnknown || op >= OpMax {
		panic(errors.NewUnexpectedError("invalid op: %d", op))
	}
	return opDescriptors[op].minVersion
}

func (op Op) String() string {
	return op.Mnemonic()
}
