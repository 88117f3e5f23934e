// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package nativesurface

import "unsafe"

// Supported reports whether this build has a native surface source.
const Supported = true

// SourceType is the surface source produced by this build.
const SourceType = STypeSurfaceSourceMetalLayer

// NativeData is the Metal layer exposed by the toolkit.
// Its layout matches the C struct {CALayer *layer;}.
type NativeData struct {
	Layer unsafe.Pointer
}

// NewNativeData returns the window data for a CAMetalLayer.
func NewNativeData(layer unsafe.Pointer) *NativeData {
	return &NativeData{Layer: layer}
}

func newSurfaceSource(native *NativeData) (*ChainedStruct, func()) {
	desc := &SurfaceSourceMetalLayer{
		Chain: ChainedStruct{SType: STypeSurfaceSourceMetalLayer},
		Layer: native.Layer,
	}
	return &desc.Chain, func() { *desc = SurfaceSourceMetalLayer{} }
}
