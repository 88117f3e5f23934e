// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package nativesurface

import (
	"fmt"
	"unsafe"
)

// SType identifies the concrete struct behind a ChainedStruct.
// Values match the WGPUSType enumeration of webgpu.h.
type SType uint32

const (
	STypeInvalid                  SType = 0x00000000
	STypeSurfaceSourceMetalLayer  SType = 0x00000004
	STypeSurfaceSourceWindowsHWND SType = 0x00000005
	STypeSurfaceSourceXlibWindow  SType = 0x00000006
)

// String returns the surface source name without the STypeSurfaceSource prefix.
func (s SType) String() string {
	switch s {
	case STypeInvalid:
		return "Invalid"
	case STypeSurfaceSourceMetalLayer:
		return "MetalLayer"
	case STypeSurfaceSourceWindowsHWND:
		return "WindowsHWND"
	case STypeSurfaceSourceXlibWindow:
		return "XlibWindow"
	default:
		return fmt.Sprintf("SType(0x%08x)", uint32(s))
	}
}

// ChainedStruct is the header of every extension struct.
// Next links further extensions; surface sources are always the last link.
type ChainedStruct struct {
	Next  *ChainedStruct
	SType SType
}

// SurfaceDescriptor is the generic surface-creation request.
// NextInChain must point at exactly one surface source.
type SurfaceDescriptor struct {
	NextInChain *ChainedStruct
	Label       string
}

// SurfaceSourceWindowsHWND describes a Win32 window.
type SurfaceSourceWindowsHWND struct {
	Chain     ChainedStruct
	HWND      uintptr
	HInstance uintptr
}

// SurfaceSourceMetalLayer describes a CAMetalLayer.
type SurfaceSourceMetalLayer struct {
	Chain ChainedStruct
	Layer unsafe.Pointer
}

// SurfaceSourceXlibWindow describes an Xlib window.
type SurfaceSourceXlibWindow struct {
	Chain   ChainedStruct
	Display unsafe.Pointer
	Window  uint64
}

// The downcasts below rely on Chain being the first field of every surface
// source, so a *ChainedStruct and a pointer to its enclosing struct share an
// address. The discriminant is checked before the conversion.

// AsWindowsHWND returns the SurfaceSourceWindowsHWND that c heads.
func AsWindowsHWND(c *ChainedStruct) (*SurfaceSourceWindowsHWND, bool) {
	if c == nil || c.SType != STypeSurfaceSourceWindowsHWND {
		return nil, false
	}
	return (*SurfaceSourceWindowsHWND)(unsafe.Pointer(c)), true
}

// AsMetalLayer returns the SurfaceSourceMetalLayer that c heads.
func AsMetalLayer(c *ChainedStruct) (*SurfaceSourceMetalLayer, bool) {
	if c == nil || c.SType != STypeSurfaceSourceMetalLayer {
		return nil, false
	}
	return (*SurfaceSourceMetalLayer)(unsafe.Pointer(c)), true
}

// AsXlibWindow returns the SurfaceSourceXlibWindow that c heads.
func AsXlibWindow(c *ChainedStruct) (*SurfaceSourceXlibWindow, bool) {
	if c == nil || c.SType != STypeSurfaceSourceXlibWindow {
		return nil, false
	}
	return (*SurfaceSourceXlibWindow)(unsafe.Pointer(c)), true
}
