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

// Variation is one labeled sample value of a type.
type Variation struct {
	Label string
	Value any
}

// Entry is one generated test case: a label and its positional arguments.
type Entry struct {
	Label string
	Args  []any
}

// ordered is an insertion-ordered string-keyed map. Setting an existing key
// replaces the value and keeps the original position.
type ordered[V any] struct {
	keys []string
	vals map[string]V
}

func (o *ordered[V]) set(k string, v V) {
	if o.vals == nil {
		o.vals = make(map[string]V)
	}
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *ordered[V]) get(k string) (V, bool) {
	v, ok := o.vals[k]
	return v, ok
}

func (o *ordered[V]) each(fn func(k string, v V) bool) {
	for _, k := range o.keys {
		if !fn(k, o.vals[k]) {
			return
		}
	}
}

func (o *ordered[V]) labels() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Variations is the ordered label -> value mapping resolved for one type.
type Variations struct {
	o ordered[any]
}

// NewVariations returns an empty set.
func NewVariations() *Variations {
	return &Variations{}
}

// Set records v under label.
func (vs *Variations) Set(label string, v any) {
	vs.o.set(label, v)
}

// Get returns the value recorded under label.
func (vs *Variations) Get(label string) (any, bool) {
	if vs == nil {
		return nil, false
	}
	return vs.o.get(label)
}

// Len returns the number of variations.
func (vs *Variations) Len() int {
	if vs == nil {
		return 0
	}
	return len(vs.o.keys)
}

// Labels returns the labels in insertion order.
func (vs *Variations) Labels() []string {
	if vs == nil {
		return nil
	}
	return vs.o.labels()
}

// Each calls fn for every variation in order until fn returns false.
func (vs *Variations) Each(fn func(label string, v any) bool) {
	if vs == nil {
		return
	}
	vs.o.each(fn)
}

// Entries returns a snapshot of the variations in order.
func (vs *Variations) Entries() []Variation {
	out := make([]Variation, 0, vs.Len())
	vs.Each(func(label string, v any) bool {
		out = append(out, Variation{Label: label, Value: v})
		return true
	})
	return out
}

// Clone returns a shallow copy that can be extended without touching vs.
func (vs *Variations) Clone() *Variations {
	cp := NewVariations()
	vs.Each(func(label string, v any) bool {
		cp.Set(label, v)
		return true
	})
	return cp
}

// Matrix is the ordered label -> arguments mapping produced by a Builder.
// Each entry becomes one test invocation.
type Matrix struct {
	o ordered[[]any]
}

// NewMatrix returns an empty matrix.
func NewMatrix() *Matrix {
	return &Matrix{}
}

// Set records args under label.
func (m *Matrix) Set(label string, args []any) {
	m.o.set(label, args)
}

// Get returns the arguments recorded under label.
func (m *Matrix) Get(label string) ([]any, bool) {
	if m == nil {
		return nil, false
	}
	return m.o.get(label)
}

// Len returns the number of generated cases.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}
	return len(m.o.keys)
}

// Labels returns the case labels in generation order.
func (m *Matrix) Labels() []string {
	if m == nil {
		return nil
	}
	return m.o.labels()
}

// Each calls fn for every case in order until fn returns false.
func (m *Matrix) Each(fn func(label string, args []any) bool) {
	if m == nil {
		return
	}
	m.o.each(fn)
}

// Entries returns a snapshot of the cases in order.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, m.Len())
	m.Each(func(label string, args []any) bool {
		out = append(out, Entry{Label: label, Args: args})
		return true
	})
	return out
}

// Map returns the cases as a plain map, dropping the order.
func (m *Matrix) Map() map[string][]any {
	out := make(map[string][]any, m.Len())
	m.Each(func(label string, args []any) bool {
		out[label] = args
		return true
	})
	return out
}
