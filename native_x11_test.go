// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build ((linux && !android) || freebsd || openbsd || netbsd || dragonfly) && !nox11

package nativesurface

import (
	"testing"
	"unsafe"
)

var testDisplay [8]byte

func testNativeData() *NativeData {
	return NewNativeData(unsafe.Pointer(&testDisplay), 42)
}

func checkPayload(t *testing.T, chain *ChainedStruct, native *NativeData) {
	t.Helper()
	desc, ok := AsXlibWindow(chain)
	if !ok {
		t.Fatalf("chain SType = %v, want XlibWindow", chain.SType)
	}
	if desc.Display != native.Display || desc.Window != uint64(native.Window) {
		t.Errorf("payload = {display:%p window:%d}, want {display:%p window:%d}",
			desc.Display, desc.Window, native.Display, native.Window)
	}
}

func TestGetSurfaceDescriptorXlibWindow(t *testing.T) {
	display := unsafe.Pointer(&testDisplay)
	chain, release := GetSurfaceDescriptor(&NativeData{Display: display, Window: 42})
	defer release()

	desc, ok := AsXlibWindow(chain)
	if !ok {
		t.Fatalf("SType = %v, want XlibWindow", chain.SType)
	}
	if desc.Display != display {
		t.Errorf("Display = %p, want %p", desc.Display, display)
	}
	if desc.Window != 42 {
		t.Errorf("Window = %d, want 42", desc.Window)
	}
	if desc.Chain.Next != nil {
		t.Error("Chain.Next should be nil")
	}
}

func TestNativeDataLayout(t *testing.T) {
	// struct {Display *display; Window window;}
	if got, want := unsafe.Sizeof(NativeData{}), 2*unsafe.Sizeof(uintptr(0)); got != want {
		t.Errorf("sizeof(NativeData) = %d, want %d", got, want)
	}
	if off := unsafe.Offsetof(NativeData{}.Window); off != unsafe.Sizeof(uintptr(0)) {
		t.Errorf("offsetof(Window) = %d, want %d", off, unsafe.Sizeof(uintptr(0)))
	}
}
