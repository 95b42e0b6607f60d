// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vertex stages vec32 vector data for GPU vertex buffers.
//
// Pack2, Pack3, and Pack4 reinterpret vector slices as raw bytes without
// copying, and Layout2, Layout3, and Layout4 describe the matching vertex
// attribute layouts in gputypes terms. Buffer ties the two together
// against a gpucontext device provider supplied by the host application.
//
// vertex receives the device from the host, it does not create one: all
// GPU access goes through the gpucontext provider interfaces, so any
// backend in the gogpu ecosystem can consume the staged data.
package vertex
