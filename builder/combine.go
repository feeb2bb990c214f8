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

package builder

import (
	"math"
	"strings"

	"dirpx.dev/mfx/apis"
)

// combinations returns the argument tuples of method without invoking it.
// A method without parameters has exactly one, empty, tuple.
func (b *Builder) combinations(method apis.Callable) (*apis.Matrix, error) {
	if len(method.Params) == 0 {
		m := apis.NewMatrix()
		m.Set(label(method.Name, nil), []any{})
		return m, nil
	}

	for i, p := range method.Params {
		if p.Type == "" {
			return nil, &apis.MissingTypeError{Method: method.Name, Param: p.Name, Index: i}
		}
	}

	sets := make([]*apis.Variations, len(method.Params))
	for i, p := range method.Params {
		vs, err := b.Resolve(p.Type)
		if err != nil {
			return nil, err
		}
		if p.HasDefault {
			// Defaults are tested alongside the resolved values; never
			// extend the cached set itself.
			vs = vs.Clone()
			vs.Set(b.cfg.DefaultLabel, p.Default)
		}
		sets[i] = vs
	}
	return b.product(method.Name, sets)
}

// product computes the Cartesian product of sets in order, the first set
// varying slowest. Any empty set empties the product.
func (b *Builder) product(name string, sets []*apis.Variations) (*apis.Matrix, error) {
	out := apis.NewMatrix()

	count := 1
	for _, s := range sets {
		n := s.Len()
		if n == 0 {
			return out, nil
		}
		if count > math.MaxInt/n {
			count = math.MaxInt
		} else {
			count *= n
		}
	}
	if limit := b.cfg.MaxCombinations; limit > 0 && count > limit {
		return nil, &apis.TooManyCombinationsError{Method: name, Count: count, Limit: limit}
	}

	entries := make([][]apis.Variation, len(sets))
	for i, s := range sets {
		entries[i] = s.Entries()
	}

	idx := make([]int, len(sets))
	labels := make([]string, len(sets))
	for {
		args := make([]any, len(sets))
		for i, e := range entries {
			labels[i] = e[idx[i]].Label
			args[i] = e[idx[i]].Value
		}
		out.Set(label(name, labels), args)

		// Advance the odometer from the last position.
		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(entries[i]) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return out, nil
		}
	}
}

// label renders "name(l1, l2, ...)".
func label(name string, parts []string) string {
	return name + "(" + strings.Join(parts, ", ") + ")"
}
