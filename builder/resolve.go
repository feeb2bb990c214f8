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
	"go.uber.org/zap"

	"dirpx.dev/mfx/apis"
	uref "dirpx.dev/mfx/utils/reflect"
)

// Resolve returns the labeled values producible for typeID.
//
// Every producer registered under the stripped identifier contributes one
// value per argument combination; nil results are dropped. The result is
// cached under the verbatim typeID and returned as-is on later calls.
// Re-entering a type still being resolved is handled per Config.OnCycle.
func (b *Builder) Resolve(typeID string) (*apis.Variations, error) {
	if vs, ok := b.resolved[typeID]; ok {
		return vs, nil
	}

	key := uref.StripNullable(typeID, b.cfg.NullableMarker)
	if _, busy := b.resolving[key]; busy {
		path := append(append(make([]string, 0, len(b.stack)+1), b.stack...), key)
		if b.cfg.OnCycle == apis.CycleEmpty {
			b.log.Debug("cyclic type resolved as empty", zap.Strings("path", path))
			return apis.NewVariations(), nil
		}
		return nil, &apis.CyclicTypeError{Type: key, Path: path}
	}

	b.resolving[key] = struct{}{}
	b.stack = append(b.stack, key)
	defer func() {
		delete(b.resolving, key)
		b.stack = b.stack[:len(b.stack)-1]
	}()

	producers := b.catalog.Producers(key)
	b.log.Debug("resolving type", zap.String("type", typeID), zap.Int("producers", len(producers)))

	vs := apis.NewVariations()
	for _, p := range producers {
		combos, err := b.combinations(p)
		if err != nil {
			return nil, err
		}
		var callErr error
		combos.Each(func(lbl string, args []any) bool {
			v, err := b.invoke(p, args)
			if err != nil {
				callErr = err
				return false
			}
			if isNil(v) {
				b.log.Debug("producer returned nil", zap.String("label", lbl))
				return true
			}
			vs.Set(lbl, v)
			return true
		})
		if callErr != nil {
			return nil, callErr
		}
	}

	b.resolved[typeID] = vs
	b.log.Debug("type resolved", zap.String("type", typeID), zap.Int("variations", vs.Len()))
	return vs, nil
}

// isNil reports the null value.
func isNil(v any) bool { return uref.IsNil(v) }
