// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"maps"
	"reflect"
)

// CycleMarker replaces a metadata value that refers back to itself.
const CycleMarker = "<cycle>"

// visit identifies a reference on the current walk path. The type is part
// of the key because a pointer to a struct and a pointer to its first field
// share an address.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// breakCycles returns md with every cyclic value replaced by CycleMarker.
// md itself is returned when nothing cycles, and is never modified.
func breakCycles(md Metadata) Metadata {
	var out Metadata
	for k, v := range md {
		if !cyclic(reflect.ValueOf(v), make(map[visit]struct{})) {
			continue
		}
		if out == nil {
			out = maps.Clone(md)
		}
		out[k] = CycleMarker
	}
	if out == nil {
		return md
	}
	return out
}

// cyclic reports whether v reaches a reference already on path. Shared but
// acyclic references are fine: a reference leaves path once its subtree is
// done.
func cyclic(v reflect.Value, path map[visit]struct{}) bool {
	if !v.IsValid() || !mayRefer(v.Type()) {
		return false
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		return cyclic(v.Elem(), path)
	case reflect.Array:
		return cyclicElems(v, path)
	case reflect.Struct:
		for i := range v.NumField() {
			if cyclic(v.Field(i), path) {
				return true
			}
		}
		return false
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() || (v.Kind() == reflect.Slice && v.Len() == 0) {
			return false
		}
	default:
		return false
	}

	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		key.len = v.Len()
	}
	if _, seen := path[key]; seen {
		return true
	}
	path[key] = struct{}{}
	defer delete(path, key)

	switch v.Kind() {
	case reflect.Pointer:
		return cyclic(v.Elem(), path)
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if cyclic(iter.Key(), path) || cyclic(iter.Value(), path) {
				return true
			}
		}
		return false
	default:
		return cyclicElems(v, path)
	}
}

func cyclicElems(v reflect.Value, path map[visit]struct{}) bool {
	for i := range v.Len() {
		if cyclic(v.Index(i), path) {
			return true
		}
	}
	return false
}

// mayRefer reports whether a value of type t can hold a reference, and so
// take part in a cycle.
func mayRefer(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice:
		return true
	case reflect.Array:
		return mayRefer(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if mayRefer(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
