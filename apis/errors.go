/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrMissingType is matched by every MissingTypeError.
	ErrMissingType = errors.New("mfx: parameter has no type definition")
	// ErrCyclicType is matched by every CyclicTypeError.
	ErrCyclicType = errors.New("mfx: cyclic type dependency")
	// ErrTooManyCombinations is matched by every TooManyCombinationsError.
	ErrTooManyCombinations = errors.New("mfx: too many combinations")
	// ErrUnknownMethod is returned when a build target cannot be found by name.
	ErrUnknownMethod = errors.New("mfx: unknown method")
	// ErrDuplicateProducer is matched by every DuplicateProducerError.
	ErrDuplicateProducer = errors.New("mfx: duplicate producer")
)

// MissingTypeError reports a parameter without a declared type. It makes
// exhaustive resolution impossible and aborts the whole build.
type MissingTypeError struct {
	// Method is the name of the callable declaring the parameter.
	Method string
	// Param is the parameter name.
	Param string
	// Index is the parameter position.
	Index int
}

// Error implements the error interface.
func (e *MissingTypeError) Error() string {
	// Example: mfx: method ToString has parameter arg0 (#0) with no type definition
	return "mfx: method " + e.Method + " has parameter " + e.Param +
		" (#" + strconv.Itoa(e.Index) + ") with no type definition"
}

// Is makes errors.Is(err, ErrMissingType) hold.
func (e *MissingTypeError) Is(target error) bool { return target == ErrMissingType }

// CyclicTypeError reports a type whose resolution depends on itself.
type CyclicTypeError struct {
	// Type is the re-entered type identifier.
	Type string
	// Path is the chain of types being resolved, ending with Type.
	Path []string
}

// Error implements the error interface.
func (e *CyclicTypeError) Error() string {
	// Example: mfx: cyclic type dependency on "A" (A -> B -> A)
	return "mfx: cyclic type dependency on " + strconv.Quote(e.Type) +
		" (" + strings.Join(e.Path, " -> ") + ")"
}

// Is makes errors.Is(err, ErrCyclicType) hold.
func (e *CyclicTypeError) Is(target error) bool { return target == ErrCyclicType }

// TooManyCombinationsError reports a matrix exceeding Config.MaxCombinations.
type TooManyCombinationsError struct {
	Method string
	Count  int
	Limit  int
}

// Error implements the error interface.
func (e *TooManyCombinationsError) Error() string {
	return "mfx: method " + e.Method + " yields " + strconv.Itoa(e.Count) +
		" combinations, limit is " + strconv.Itoa(e.Limit)
}

// Is makes errors.Is(err, ErrTooManyCombinations) hold.
func (e *TooManyCombinationsError) Is(target error) bool { return target == ErrTooManyCombinations }

// DuplicateProducerError reports two producers of one type sharing a name.
// Their variations would share labels, so one of them would never be tested.
type DuplicateProducerError struct {
	// Type is the stripped type identifier both producers return.
	Type string
	// Name is the shared producer name.
	Name string
}

// Error implements the error interface.
func (e *DuplicateProducerError) Error() string {
	// Example: mfx: type "int" has more than one producer named "One"
	return "mfx: type " + strconv.Quote(e.Type) + " has more than one producer named " + strconv.Quote(e.Name)
}

// Is makes errors.Is(err, ErrDuplicateProducer) hold.
func (e *DuplicateProducerError) Is(target error) bool { return target == ErrDuplicateProducer }
