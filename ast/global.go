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
	"fmt"

	"github.com/turbolent/prettier"

	"github.com/gteal/gteal/compiler"
	"github.com/gteal/gteal/errors"
	"github.com/gteal/gteal/ir"
	"github.com/gteal/gteal/types"
)

// GlobalField identifies a global property of the ledger or
// of the currently executing program.
//
// The set of fields is closed: it is defined by the TEAL
// specification, not by client programs. Adding a field is a
// registry change here, never an extension elsewhere.
type GlobalField uint8

const (
	GlobalFieldMinTxnFee GlobalField = iota
	GlobalFieldMinBalance
	GlobalFieldMaxTxnLife
	GlobalFieldZeroAddress
	GlobalFieldGroupSize
	GlobalFieldLogicSigVersion
	GlobalFieldRound
	GlobalFieldLatestTimestamp
	GlobalFieldCurrentApplicationID
	GlobalFieldCreatorAddress

	// NOTE: not an actual field, must be last item
	globalFieldMax
)

// globalFieldDescriptor ties a field to its canonical name,
// its result type, and the TEAL version that introduced it.
type globalFieldDescriptor struct {
	name       string
	typ        types.TealType
	minVersion uint64
}

// NOTE: the minimum version of a field is fixed at the version
// the field was introduced and never changes thereafter
var globalFieldDescriptors = [globalFieldMax]globalFieldDescriptor{
	GlobalFieldMinTxnFee:            {"MinTxnFee", types.TypeUint64, 2},
	GlobalFieldMinBalance:           {"MinBalance", types.TypeUint64, 2},
	GlobalFieldMaxTxnLife:           {"MaxTxnLife", types.TypeUint64, 2},
	GlobalFieldZeroAddress:          {"ZeroAddress", types.TypeBytes, 2},
	GlobalFieldGroupSize:            {"GroupSize", types.TypeUint64, 2},
	GlobalFieldLogicSigVersion:      {"LogicSigVersion", types.TypeUint64, 2},
	GlobalFieldRound:                {"Round", types.TypeUint64, 2},
	GlobalFieldLatestTimestamp:      {"LatestTimestamp", types.TypeUint64, 2},
	GlobalFieldCurrentApplicationID: {"CurrentApplicationID", types.TypeUint64, 2},
	GlobalFieldCreatorAddress:       {"CreatorAddress", types.TypeBytes, 3},
}

var globalFieldsByName = func() map[string]GlobalField {
	fields := make(map[string]GlobalField, globalFieldMax)
	for field := GlobalField(0); field < globalFieldMax; field++ {
		fields[field.Name()] = field
	}
	return fields
}()

func (f GlobalField) descriptor() globalFieldDescriptor {
	if f >= globalFieldMax {
		panic(errors.NewUnexpectedError("invalid global field: %d", f))
	}
	return globalFieldDescriptors[f]
}

// Name returns the canonical name of the field,
// as it appears in the emitted instruction stream.
func (f GlobalField) Name() string {
	return f.descriptor().name
}

// TypeOf returns the result type of the field.
func (f GlobalField) TypeOf() types.TealType {
	return f.descriptor().typ
}

// MinVersion returns the TEAL version that introduced the field.
func (f GlobalField) MinVersion() uint64 {
	return f.descriptor().minVersion
}

func (f GlobalField) String() string {
	return f.Name()
}

// GlobalFieldByName looks up a field by its canonical name.
func GlobalFieldByName(name string) (GlobalField, error) {
	field, ok := globalFieldsByName[name]
	if !ok {
		return 0, &UnknownFieldError{Name: name}
	}
	return field, nil
}

// GlobalFieldNames returns the canonical names of all fields,
// in field order.
func GlobalFieldNames() []string {
	names := make([]string, 0, globalFieldMax)
	for field := GlobalField(0); field < globalFieldMax; field++ {
		names = append(names, field.Name())
	}
	return names
}

// Global

// Global is an expression that accesses a global property.
type Global struct {
	Field GlobalField
}

var _ Expr = &Global{}

func NewGlobal(field GlobalField) *Global {
	return &Global{
		Field: field,
	}
}

func (*Global) isExpr() {}

func (e *Global) TypeOf() types.TealType {
	return e.Field.TypeOf()
}

func (e *Global) Lower(options compiler.Options) (*ir.Block, error) {
	// The field must be verified before any instruction is produced,
	// so a version failure never results in partial IR
	err := compiler.VerifyFieldVersion(
		e.Field.Name(),
		e.Field.MinVersion(),
		options.Version,
	)
	if err != nil {
		return nil, err
	}

	err = compiler.VerifyOpVersion(ir.OpGlobal, options.Version)
	if err != nil {
		return nil, err
	}

	instruction := ir.NewInstruction(e, ir.OpGlobal, e.Field.Name())
	return ir.FromInstruction(instruction), nil
}

func (e *Global) String() string {
	return fmt.Sprintf("(Global %s)", e.Field.Name())
}

func (e *Global) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("global"),
		prettier.Space,
		prettier.Text(e.Field.Name()),
	}
}

// MinTxnFee returns the minimum transaction fee, in micro-Algos.
func MinTxnFee() *Global {
	return NewGlobal(GlobalFieldMinTxnFee)
}

// MinBalance returns the minimum account balance, in micro-Algos.
func MinBalance() *Global {
	return NewGlobal(GlobalFieldMinBalance)
}

// MaxTxnLife returns the maximum number of rounds a transaction can be valid for.
func MaxTxnLife() *Global {
	return NewGlobal(GlobalFieldMaxTxnLife)
}

// ZeroAddress returns the 32-byte all-zero address.
func ZeroAddress() *Global {
	return NewGlobal(GlobalFieldZeroAddress)
}

// GroupSize returns the number of transactions in the atomic transaction group.
// It is at least 1.
func GroupSize() *Global {
	return NewGlobal(GlobalFieldGroupSize)
}

// LogicSigVersion returns the maximum supported TEAL version.
func LogicSigVersion() *Global {
	return NewGlobal(GlobalFieldLogicSigVersion)
}

// Round returns the current round number.
func Round() *Global {
	return NewGlobal(GlobalFieldRound)
}

// LatestTimestamp returns the UNIX timestamp of the latest confirmed block.
// The program fails if the timestamp is negative.
func LatestTimestamp() *Global {
	return NewGlobal(GlobalFieldLatestTimestamp)
}

// CurrentApplicationID returns the ID of the executing application.
// The program fails if no application is executing.
func CurrentApplicationID() *Global {
	return NewGlobal(GlobalFieldCurrentApplicationID)
}

// CreatorAddress returns the address of the creator of the executing
// application. The program fails if no application is executing.
// Available from TEAL v3.
func CreatorAddress() *Global {
	return NewGlobal(GlobalFieldCreatorAddress)
}
