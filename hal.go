// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package nativesurface

import (
	"sync"

	"github.com/gogpu/wgpu/hal"
)

// HALEntryPoints implements EntryPoints on a gogpu/wgpu HAL instance.
//
// The HAL takes raw (display, window) handle pairs instead of a chained
// descriptor, so the surface source is decoded and its fields are passed in
// the order every HAL backend expects:
//
//   - WindowsHWND: (hinstance, hwnd)
//   - XlibWindow: (display, window)
//   - MetalLayer: (0, layer)
//
// Created surfaces are kept in a handle table until DestroySurface.
// The Instance argument of InstanceCreateSurface is ignored; surfaces are
// always created on the wrapped HAL instance.
type HALEntryPoints struct {
	inst hal.Instance

	mu       sync.Mutex
	last     Surface
	surfaces map[Surface]hal.Surface
}

// NewHALEntryPoints wraps inst. The caller keeps ownership of inst.
func NewHALEntryPoints(inst hal.Instance) *HALEntryPoints {
	return &HALEntryPoints{
		inst:     inst,
		surfaces: make(map[Surface]hal.Surface),
	}
}

// InstanceCreateSurface implements EntryPoints.
// It returns NullSurface for a nil or unknown chain and when the HAL
// reports an error.
func (h *HALEntryPoints) InstanceCreateSurface(_ Instance, desc *SurfaceDescriptor) Surface {
	if desc == nil {
		return NullSurface
	}
	display, window, ok := halSurfaceHandles(desc.NextInChain)
	if !ok {
		Logger().Warn("nativesurface: no HAL handles for surface source", "source", sourceOf(desc.NextInChain))
		return NullSurface
	}

	s, err := h.inst.CreateSurface(display, window)
	if err != nil {
		Logger().Warn("nativesurface: HAL surface creation failed", "source", desc.NextInChain.SType, "err", err)
		return NullSurface
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last++
	h.surfaces[h.last] = s
	return h.last
}

// Surface returns the HAL surface behind s.
func (h *HALEntryPoints) Surface(s Surface) (hal.Surface, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hs, ok := h.surfaces[s]
	return hs, ok
}

// DestroySurface destroys the HAL surface behind s and forgets the handle.
// Unknown handles are ignored.
func (h *HALEntryPoints) DestroySurface(s Surface) {
	h.mu.Lock()
	hs, ok := h.surfaces[s]
	delete(h.surfaces, s)
	h.mu.Unlock()

	if ok {
		hs.Destroy()
	}
}

func halSurfaceHandles(chain *ChainedStruct) (display, window uintptr, ok bool) {
	if src, ok := AsWindowsHWND(chain); ok {
		return src.HInstance, src.HWND, true
	}
	if src, ok := AsXlibWindow(chain); ok {
		return uintptr(src.Display), uintptr(src.Window), true
	}
	if src, ok := AsMetalLayer(chain); ok {
		return 0, uintptr(src.Layer), true
	}
	return 0, 0, false
}

func sourceOf(chain *ChainedStruct) SType {
	if chain == nil {
		return STypeInvalid
	}
	return chain.SType
}
