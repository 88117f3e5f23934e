// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package nativesurface

import "testing"

func testNativeData() *NativeData {
	return &NativeData{HWND: 0x1000, HInstance: 0x2000}
}

func checkPayload(t *testing.T, chain *ChainedStruct, native *NativeData) {
	t.Helper()
	desc, ok := AsWindowsHWND(chain)
	if !ok {
		t.Fatalf("chain SType = %v, want WindowsHWND", chain.SType)
	}
	if desc.HWND != uintptr(native.HWND) || desc.HInstance != uintptr(native.HInstance) {
		t.Errorf("payload = {hwnd:%#x hinstance:%#x}, want {hwnd:%#x hinstance:%#x}",
			desc.HWND, desc.HInstance, native.HWND, native.HInstance)
	}
}

func TestGetSurfaceDescriptorWindowsHWND(t *testing.T) {
	chain, release := GetSurfaceDescriptor(&NativeData{HWND: 0x1000, HInstance: 0x2000})
	defer release()

	desc, ok := AsWindowsHWND(chain)
	if !ok {
		t.Fatalf("SType = %v, want WindowsHWND", chain.SType)
	}
	if desc.HWND != 0x1000 {
		t.Errorf("HWND = %#x, want 0x1000", desc.HWND)
	}
	if desc.HInstance != 0x2000 {
		t.Errorf("HInstance = %#x, want 0x2000", desc.HInstance)
	}
	if desc.Chain.Next != nil {
		t.Error("Chain.Next should be nil")
	}
}

func TestNewNativeData(t *testing.T) {
	native, err := NewNativeData(0x1000)
	if err != nil {
		t.Fatalf("NewNativeData() error = %v", err)
	}
	if native.HWND != 0x1000 {
		t.Errorf("HWND = %#x, want 0x1000", native.HWND)
	}
	if native.HInstance == 0 {
		t.Error("HInstance should be the executable module handle")
	}
}
