// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package nativesurface

import (
	"errors"
	"unsafe"
)

// ErrUnsupportedPlatform reports that this build has no native surface source.
var ErrUnsupportedPlatform = errors.New("nativesurface: no native surface support on this platform")

// GetSurfaceDescriptor allocates the surface source for native.
//
// The returned chain heads a descriptor of the kind given by SourceType with
// every native field copied in and Next set to nil. release scrubs that
// descriptor and must be called exactly once, after the chain is no longer
// referenced.
//
// On builds where Supported is false the chain is nil and release does
// nothing. native is not validated; it must have this build's shape.
func GetSurfaceDescriptor(native *NativeData) (chain *ChainedStruct, release func()) {
	return newSurfaceSource(native)
}

// CreateSurface creates a surface for native through procs.
//
// The descriptor lives only for the duration of the InstanceCreateSurface
// call and is released on every exit path. The surface returned by procs is
// passed through unchanged, including NullSurface.
func CreateSurface(procs EntryPoints, instance Instance, native *NativeData) Surface {
	chain, release := GetSurfaceDescriptor(native)
	defer release()

	desc := SurfaceDescriptor{NextInChain: chain}
	if chain == nil {
		Logger().Warn("nativesurface: creating surface without native source", "err", ErrUnsupportedPlatform)
	} else {
		Logger().Debug("nativesurface: creating surface", "source", chain.SType)
	}
	return procs.InstanceCreateSurface(instance, &desc)
}

// CreateSurfaceForWindow is CreateSurface for a toolkit's opaque window
// data pointer, such as the one SDL exposes.
//
// window must point at memory laid out as this build's NativeData; the
// shape is not checked.
func CreateSurfaceForWindow(procs EntryPoints, instance Instance, window unsafe.Pointer) Surface {
	return CreateSurface(procs, instance, (*NativeData)(window))
}
