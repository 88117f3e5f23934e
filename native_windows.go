// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package nativesurface

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Supported reports whether this build has a native surface source.
const Supported = true

// SourceType is the surface source produced by this build.
const SourceType = STypeSurfaceSourceWindowsHWND

// NativeData is the Win32 window data exposed by the toolkit.
// Its layout matches the C struct {HWND hwnd; HINSTANCE hinstance;}.
type NativeData struct {
	HWND      windows.HWND
	HInstance windows.Handle
}

// NewNativeData returns the window data for hwnd, owned by the module of
// the running executable.
func NewNativeData(hwnd windows.HWND) (*NativeData, error) {
	var module windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &module); err != nil {
		return nil, fmt.Errorf("nativesurface: get module handle: %w", err)
	}
	return &NativeData{HWND: hwnd, HInstance: module}, nil
}

func newSurfaceSource(native *NativeData) (*ChainedStruct, func()) {
	desc := &SurfaceSourceWindowsHWND{
		Chain:     ChainedStruct{SType: STypeSurfaceSourceWindowsHWND},
		HWND:      uintptr(native.HWND),
		HInstance: uintptr(native.HInstance),
	}
	return &desc.Chain, func() { *desc = SurfaceSourceWindowsHWND{} }
}
