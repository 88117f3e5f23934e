// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package nativesurface bridges a windowing toolkit's native window data to
// a WebGPU surface-source descriptor.
//
// A toolkit such as SDL exposes the platform window as an opaque pointer to
// a small struct: HWND and HINSTANCE on Windows, a CAMetalLayer on Darwin,
// an Xlib Display and Window on X11. The package reinterprets that pointer
// as [NativeData], builds the chained descriptor the platform needs and
// passes it to the instance's create-surface entry point:
//
//	procs := &nativesurface.ProcTable{CreateSurface: instanceCreateSurface}
//	surface := nativesurface.CreateSurfaceForWindow(procs, instance, window)
//
// [HALEntryPoints] is a ready-made EntryPoints for a gogpu/wgpu HAL
// instance:
//
//	surface := nativesurface.CreateSurface(nativesurface.NewHALEntryPoints(inst), 0, native)
//
// # Platforms
//
// Exactly one [NativeData] shape is compiled into a binary:
//
//   - windows: [SurfaceSourceWindowsHWND]
//   - darwin: [SurfaceSourceMetalLayer]
//   - linux, *bsd: [SurfaceSourceXlibWindow] (disabled with the nox11 tag)
//
// On any other build [Supported] is false, [GetSurfaceDescriptor] returns a
// nil chain and surface creation is left to the entry point.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive debug
// records for every surface request.
package nativesurface
