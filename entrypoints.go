// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package nativesurface

// Instance is an opaque WebGPU instance handle owned by the caller.
type Instance uintptr

// Surface is an opaque WebGPU surface handle returned by an entry point.
type Surface uintptr

// NullSurface is the invalid surface handle.
const NullSurface Surface = 0

// EntryPoints is the subset of a WebGPU proc table used to create surfaces.
// Implementations are called synchronously from the caller's goroutine.
type EntryPoints interface {
	InstanceCreateSurface(instance Instance, desc *SurfaceDescriptor) Surface
}

// ProcTable is a function-pointer table implementing EntryPoints.
// It lets callers plug in procs loaded from a native library.
type ProcTable struct {
	CreateSurface func(instance Instance, desc *SurfaceDescriptor) Surface
}

// InstanceCreateSurface implements EntryPoints.
// It returns NullSurface when CreateSurface is not set.
func (p *ProcTable) InstanceCreateSurface(instance Instance, desc *SurfaceDescriptor) Surface {
	if p == nil || p.CreateSurface == nil {
		return NullSurface
	}
	return p.CreateSurface(instance, desc)
}
