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

// Package pretty renders compilation errors for human consumption.
package pretty

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora/v4"

	"github.com/gteal/gteal/errors"
)

type ErrorPrettyPrinter struct {
	writer io.Writer
	aurora *aurora.Aurora
}

func NewErrorPrettyPrinter(writer io.Writer, colored bool) ErrorPrettyPrinter {
	return ErrorPrettyPrinter{
		writer: writer,
		aurora: aurora.New(
			aurora.WithColors(colored),
			aurora.WithHyperlinks(false),
		),
	}
}

func (p ErrorPrettyPrinter) errorLabel() string {
	return p.aurora.Colorize(
		"error",
		aurora.RedFg|aurora.BrightFg|aurora.BoldFm,
	).String()
}

func (p ErrorPrettyPrinter) noteLabel() string {
	return p.aurora.Colorize(
		"note",
		aurora.CyanFg|aurora.BoldFm,
	).String()
}

// PrettyPrintError writes the error message, followed by a note line
// for the secondary message of errors that provide one.
func (p ErrorPrettyPrinter) PrettyPrintError(err error) error {
	_, printErr := fmt.Fprintf(
		p.writer,
		"%s: %s\n",
		p.errorLabel(),
		err.Error(),
	)
	if printErr != nil {
		return printErr
	}

	if secondaryError, ok := err.(errors.SecondaryError); ok {
		_, printErr = fmt.Fprintf(
			p.writer,
			"  %s: %s\n",
			p.noteLabel(),
			secondaryError.SecondaryError(),
		)
		if printErr != nil {
			return printErr
		}
	}

	return nil
}
