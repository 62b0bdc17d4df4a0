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
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/turbolent/prettier"

	"github.com/gteal/gteal/compiler"
	"github.com/gteal/gteal/ir"
	"github.com/gteal/gteal/types"
)

// Bytes is an expression that represents a byte-string constant,
// given in one of the encodings the TEAL assembler understands.
// The payload is validated against the encoding at construction time.
type Bytes struct {
	// literal is the operand as it appears in the emitted instruction,
	// e.g. "base64(Zm9v)" or "0xdeadbeef"
	literal string
}

var _ Expr = &Bytes{}

// NewBytes creates a byte-string constant expression from a payload
// in the named encoding: "base16", "base32", or "base64".
func NewBytes(encoding string, payload string) (*Bytes, error) {
	switch encoding {
	case "base16":
		return NewBytesBase16(payload)
	case "base32":
		return NewBytesBase32(payload)
	case "base64":
		return NewBytesBase64(payload)
	default:
		return nil, &InvalidLiteralTypeError{
			Literal:  encoding,
			Expected: `one of the encodings "base16", "base32", "base64"`,
		}
	}
}

// NewBytesBase16 creates a byte-string constant expression
// from a hex-encoded payload. A leading "0x" is accepted.
func NewBytesBase16(payload string) (*Bytes, error) {
	trimmed := strings.TrimPrefix(payload, "0x")
	_, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, &InvalidLiteralTypeError{
			Literal:  payload,
			Expected: "a base16-encoded byte string",
		}
	}
	return &Bytes{
		literal: "0x" + trimmed,
	}, nil
}

// NewBytesBase32 creates a byte-string constant expression
// from a base32-encoded payload.
func NewBytesBase32(payload string) (*Bytes, error) {
	_, err := base32.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &InvalidLiteralTypeError{
			Literal:  payload,
			Expected: "a base32-encoded byte string",
		}
	}
	return &Bytes{
		literal: fmt.Sprintf("base32(%s)", payload),
	}, nil
}

// NewBytesBase64 creates a byte-string constant expression
// from a base64-encoded payload.
func NewBytesBase64(payload string) (*Bytes, error) {
	_, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, &InvalidLiteralTypeError{
			Literal:  payload,
			Expected: "a base64-encoded byte string",
		}
	}
	return &Bytes{
		literal: fmt.Sprintf("base64(%s)", payload),
	}, nil
}

// Literal returns the operand text of the constant,
// as it appears in the emitted instruction.
func (e *Bytes) Literal() string {
	return e.literal
}

func (*Bytes) isExpr() {}

func (e *Bytes) TypeOf() types.TealType {
	return types.TypeBytes
}

func (e *Bytes) Lower(options compiler.Options) (*ir.Block, error) {
	err := compiler.VerifyOpVersion(ir.OpByte, options.Version)
	if err != nil {
		return nil, err
	}

	instruction := ir.NewInstruction(e, ir.OpByte, e.literal)
	return ir.FromInstruction(instruction), nil
}

func (e *Bytes) String() string {
	return fmt.Sprintf("(Bytes: %s)", e.literal)
}

func (e *Bytes) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("byte"),
		prettier.Space,
		prettier.Text(e.literal),
	}
}
