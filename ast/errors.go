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
	"math/big"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/gteal/gteal/errors"
)

// InvalidLiteralTypeError

// InvalidLiteralTypeError is reported when a literal constructor
// receives a value of the wrong kind.
type InvalidLiteralTypeError struct {
	Literal  string
	Expected string
}

var _ errors.UserError = &InvalidLiteralTypeError{}
var _ errors.SecondaryError = &InvalidLiteralTypeError{}

func (*InvalidLiteralTypeError) IsUserError() {}

func (e *InvalidLiteralTypeError) Error() string {
	return fmt.Sprintf(
		"invalid literal: `%s`",
		e.Literal,
	)
}

func (e *InvalidLiteralTypeError) SecondaryError() string {
	return fmt.Sprintf("expected %s", e.Expected)
}

// InvalidLiteralRangeError

// InvalidLiteralRangeError is reported when a numeric literal
// is outside the representable range.
type InvalidLiteralRangeError struct {
	Value *big.Int
	Min   *big.Int
	Max   *big.Int
}

var _ errors.UserError = &InvalidLiteralRangeError{}
var _ errors.SecondaryError = &InvalidLiteralRangeError{}

func (*InvalidLiteralRangeError) IsUserError() {}

func (e *InvalidLiteralRangeError) Error() string {
	return fmt.Sprintf(
		"literal out of range: `%s`",
		e.Value,
	)
}

func (e *InvalidLiteralRangeError) SecondaryError() string {
	return fmt.Sprintf(
		"expected a value in the range [%s, %s]",
		e.Min,
		e.Max,
	)
}

// UnknownFieldError

// UnknownFieldError is reported when a requested global field name
// has no registry entry.
type UnknownFieldError struct {
	Name string
}

var _ errors.UserError = &UnknownFieldError{}
var _ errors.SecondaryError = &UnknownFieldError{}

func (*UnknownFieldError) IsUserError() {}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf(
		"unknown global field: `%s`",
		e.Name,
	)
}

func (e *UnknownFieldError) SecondaryError() string {
	closest := findClosestName(e.Name, GlobalFieldNames())
	if closest == "" {
		return "no global field with a similar name exists"
	}
	return fmt.Sprintf("did you mean `%s`?", closest)
}

// UnknownEnumValueError

// UnknownEnumValueError is reported when a requested symbolic
// enum name has no entry in the int enum table.
type UnknownEnumValueError struct {
	Name string
}

var _ errors.UserError = &UnknownEnumValueError{}
var _ errors.SecondaryError = &UnknownEnumValueError{}

func (*UnknownEnumValueError) IsUserError() {}

func (e *UnknownEnumValueError) Error() string {
	return fmt.Sprintf(
		"unknown int enum value: `%s`",
		e.Name,
	)
}

func (e *UnknownEnumValueError) SecondaryError() string {
	closest := findClosestName(e.Name, IntEnumNames())
	if closest == "" {
		return "no enum value with a similar name exists"
	}
	return fmt.Sprintf("did you mean `%s`?", closest)
}

// findClosestName finds the candidate with the smallest edit distance
// from the requested name. In cases of typos, this should provide
// a helpful hint.
func findClosestName(name string, candidates []string) (closest string) {
	nameRunes := []rune(name)

	closestDistance := len(name)

	for _, candidate := range candidates {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)

		// Don't update the closest name if the distance is greater than one already found,
		// or if the edits required would involve a complete replacement of the candidate's text
		if distance < closestDistance && distance < len(candidate) {
			closest = candidate
			closestDistance = distance
		}
	}

	return
}
