// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package nativesurface

import "github.com/gogpu/gputypes"

// SurfaceInfo describes the native surfaces this build can create.
type SurfaceInfo struct {
	// Source is the surface source kind, STypeInvalid when unsupported.
	Source SType

	// Supported mirrors the package constant.
	Supported bool

	// DefaultFormat is the swapchain format to fall back on before surface
	// capabilities are known. Once an adapter is available, prefer the
	// formats it reports for the surface.
	DefaultFormat gputypes.TextureFormat
}

// Info returns the SurfaceInfo for this build.
func Info() SurfaceInfo {
	info := SurfaceInfo{
		Source:        SourceType,
		Supported:     Supported,
		DefaultFormat: gputypes.TextureFormatUndefined,
	}
	if Supported {
		info.DefaultFormat = gputypes.TextureFormatBGRA8Unorm
	}
	return info
}

// Err returns ErrUnsupportedPlatform when the build has no native source.
func (i SurfaceInfo) Err() error {
	if !i.Supported {
		return ErrUnsupportedPlatform
	}
	return nil
}
