// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !windows && !darwin && !(((linux && !android) || freebsd || openbsd || netbsd || dragonfly) && !nox11)

package nativesurface

// Supported reports whether this build has a native surface source.
const Supported = false

// SourceType is the surface source produced by this build.
const SourceType = STypeInvalid

// NativeData carries no fields on builds without a native surface source.
type NativeData struct{}

func newSurfaceSource(*NativeData) (*ChainedStruct, func()) {
	return nil, func() {}
}
