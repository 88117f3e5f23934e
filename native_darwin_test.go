// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package nativesurface

import (
	"testing"
	"unsafe"
)

var testLayer [8]byte

func testNativeData() *NativeData {
	return NewNativeData(unsafe.Pointer(&testLayer))
}

func checkPayload(t *testing.T, chain *ChainedStruct, native *NativeData) {
	t.Helper()
	desc, ok := AsMetalLayer(chain)
	if !ok {
		t.Fatalf("chain SType = %v, want MetalLayer", chain.SType)
	}
	if desc.Layer != native.Layer {
		t.Errorf("Layer = %p, want %p", desc.Layer, native.Layer)
	}
}

func TestGetSurfaceDescriptorMetalLayer(t *testing.T) {
	layer := unsafe.Pointer(&testLayer)
	chain, release := GetSurfaceDescriptor(&NativeData{Layer: layer})
	defer release()

	desc, ok := AsMetalLayer(chain)
	if !ok {
		t.Fatalf("SType = %v, want MetalLayer", chain.SType)
	}
	if desc.Layer != layer {
		t.Errorf("Layer = %p, want %p", desc.Layer, layer)
	}
	if desc.Chain.Next != nil {
		t.Error("Chain.Next should be nil")
	}
}
