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
	"fmt"
	"strings"
)

// CyclePolicy controls how a builder reacts when resolving a type requires
// that same type again before its resolution finished.
//
// # Values
//
//   - CycleFail: abort with a CyclicTypeError (default).
//   - CycleEmpty: treat the re-entered type as having no variations, which
//     collapses every combination depending on it to nothing.
//
// Adding values is allowed; existing values MUST NOT change meaning.
type CyclePolicy int

const (
	// CycleFail aborts the build with a CyclicTypeError.
	CycleFail CyclePolicy = iota

	// CycleEmpty resolves the re-entered type to an empty variation set.
	CycleEmpty
)

// String returns the canonical token for p, or a diagnostic form for
// unknown values.
func (p CyclePolicy) String() string {
	switch p {
	case CycleFail:
		return "fail"
	case CycleEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseCyclePolicy parses a case-insensitive policy token.
func ParseCyclePolicy(s string) (CyclePolicy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return CycleFail, fmt.Errorf("mfx: empty cycle policy")
	}

	switch strings.ToLower(trimmed) {
	case "fail":
		return CycleFail, nil
	case "empty":
		return CycleEmpty, nil
	default:
		return CycleFail, fmt.Errorf("mfx: unknown cycle policy %q", s)
	}
}

// MustParseCyclePolicy is like ParseCyclePolicy but panics on error.
func MustParseCyclePolicy(s string) CyclePolicy {
	p, err := ParseCyclePolicy(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText implements encoding.TextMarshaler.
func (p CyclePolicy) MarshalText() ([]byte, error) {
	switch p {
	case CycleFail, CycleEmpty:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("mfx: cannot marshal unknown cycle policy %d", int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *CyclePolicy) UnmarshalText(text []byte) error {
	v, err := ParseCyclePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
