// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build ((linux && !android) || freebsd || openbsd || netbsd || dragonfly) && !nox11

package nativesurface

import "unsafe"

// Supported reports whether this build has a native surface source.
const Supported = true

// SourceType is the surface source produced by this build.
const SourceType = STypeSurfaceSourceXlibWindow

// NativeData is the Xlib window data exposed by the toolkit.
// Its layout matches the C struct {Display *display; Window window;};
// Window is an unsigned long and therefore pointer sized.
type NativeData struct {
	Display unsafe.Pointer
	Window  uintptr
}

// NewNativeData returns the window data for an Xlib display and window id.
func NewNativeData(display unsafe.Pointer, window uintptr) *NativeData {
	return &NativeData{Display: display, Window: window}
}

func newSurfaceSource(native *NativeData) (*ChainedStruct, func()) {
	desc := &SurfaceSourceXlibWindow{
		Chain:   ChainedStruct{SType: STypeSurfaceSourceXlibWindow},
		Display: native.Display,
		Window:  uint64(native.Window),
	}
	return &desc.Chain, func() { *desc = SurfaceSourceXlibWindow{} }
}
