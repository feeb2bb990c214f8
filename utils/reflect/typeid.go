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

package reflect

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectArgType indicates an argument that cannot be passed as the
	// declared parameter type.
	ErrReflectArgType = errors.New("reflect: argument not assignable to parameter")
)

// TypeID returns the identifier used to index t in a catalog. Named types
// are qualified with their package path ("example.com/a/model.User"), so
// same-named types from different packages never share an identifier;
// builtins and composites of them keep the reflect spelling ("int",
// "[]string", "map[string]int").
// Empty interfaces carry no type information and yield "".
func TypeID(t reflect.Type) string {
	if t == nil || IsEmptyInterface(t) {
		return ""
	}
	return typeID(t)
}

func typeID(t reflect.Type) string {
	if t.Name() != "" {
		if pkg := t.PkgPath(); pkg != "" {
			return pkg + "." + t.Name()
		}
		return t.String()
	}
	switch t.Kind() {
	case reflect.Ptr:
		return "*" + typeID(t.Elem())
	case reflect.Slice:
		return "[]" + typeID(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeID(t.Elem())
	case reflect.Map:
		return "map[" + typeID(t.Key()) + "]" + typeID(t.Elem())
	case reflect.Chan:
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + typeID(t.Elem())
		case reflect.SendDir:
			return "chan<- " + typeID(t.Elem())
		default:
			return "chan " + typeID(t.Elem())
		}
	default:
		// Unnamed func, struct and interface literals.
		return t.String()
	}
}

// IsEmptyInterface reports whether t is interface{} / any.
func IsEmptyInterface(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Interface && t.NumMethod() == 0
}

// StripNullable removes one leading marker from id. "?Foo" -> "Foo".
// An empty marker leaves id unchanged.
func StripNullable(id, marker string) string {
	if marker == "" {
		return id
	}
	return strings.TrimPrefix(id, marker)
}

// IsNil reports whether v is the null value: an untyped nil or a nil
// pointer, map, slice, func, chan or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// ArgValue converts v into a value passable as parameter type t.
// A nil v becomes the zero value of t. No conversion is attempted: v must
// be assignable to t.
func ArgValue(v any, t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, ErrReflectNilType
	}
	if v == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, ErrReflectArgType
	}
	return rv, nil
}

// ResultValue unwraps a reflect result into an interface value, mapping
// invalid values to nil.
func ResultValue(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
