// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package store

import (
	"reflect"
	"testing"
)

func TestOrdered(t *testing.T) {
	o := newOrdered[int]()
	o.set("a", 1)
	o.set("b", 2)
	o.set("c", 3)
	o.set("a", 10)

	if got := o.values(); !reflect.DeepEqual(got, []int{10, 2, 3}) {
		t.Errorf("values() = %v", got)
	}
	if !o.delete("b") || o.delete("b") {
		t.Error("delete should report presence once")
	}
	if got := o.values(); !reflect.DeepEqual(got, []int{10, 3}) {
		t.Errorf("values() after delete = %v", got)
	}
	if v, ok := o.get("c"); !ok || v != 3 {
		t.Errorf("get(c) = %v, %v", v, ok)
	}
	if o.len() != 2 {
		t.Errorf("len() = %d", o.len())
	}

	vals := o.values()
	vals[0] = 99
	if v, _ := o.get("a"); v != 10 {
		t.Error("values() must return a copy")
	}
}
