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

// Package mfx generates exhaustive argument matrices for Go tests.
//
// Given an object factory (any value whose exported methods return sample
// values) and a target function, mfx resolves every parameter type of the
// target to the values the factory can produce for it, recursively feeding
// producers with values of their own parameter types, and returns the full
// Cartesian product of argument lists, each under a readable label:
//
//	type samples struct{}
//
//	func (samples) One() int              { return 1 }
//	func (samples) Two() int              { return 2 }
//	func (samples) Itoa(n int) string     { return strconv.Itoa(n) }
//
//	m, err := mfx.Build(samples{}, func(n int, s string) {})
//	// func1(One(), Itoa(One())) -> [1 "1"]
//	// func1(One(), Itoa(Two())) -> [1 "2"]
//	// func1(Two(), Itoa(One())) -> [2 "1"]
//	// func1(Two(), Itoa(Two())) -> [2 "2"]
//
// # Design
//
// The work is split into small layers:
//
//   - apis: contracts and data (Callable descriptors, Variations, Matrix,
//     Config, errors).
//
//   - strategy / introspect: turn factories and functions into Callable
//     descriptors once. The default chain first asks the factory itself
//     (apis.Describer), then falls back to reflection.
//
//   - catalog: an immutable index of producers by return type, including a
//     synthetic ObjectFactory producer returning the factory itself.
//
//   - builder: the engine. Resolve memoizes the variations of each type,
//     guards against cyclic type dependencies, and Build combines them.
//
// A Builder holds mutable state and is meant for one goroutine and one
// test-matrix session. The package-level functions here only publish
// defaults (config, introspector, logger) through an atomic snapshot;
// every New/Build call gets a fresh builder and cache.
//
// # Semantics worth knowing
//
//   - Producers returning nil contribute nothing.
//   - A type without producers has no variations, so any target depending
//     on it yields an empty matrix, unless the parameter has a default.
//   - Defaults are added next to resolved values under "(default)".
//   - Parameters without a declared type (any, in Go) fail the build with
//     apis.MissingTypeError.
//
// See package mfxtest for running a matrix as subtests.
package mfx
