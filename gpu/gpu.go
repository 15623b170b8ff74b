// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package gpu provides WebGPU device bootstrap for programs that do not
// already own a device, such as the bundled diagnostic CLI and examples.
//
// Example:
//
//	sess, err := gpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Release()
//
//	var ctx shaderassert.Context
//	err = ctx.Init(sess.Device())
package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"

	internalgpu "github.com/gpudiag/shaderassert/internal/gpu"
)

// Session owns one WebGPU instance/adapter/device/queue chain.
type Session = internalgpu.Session

// New creates a session on the highest-performance available adapter.
// Call Release when done to free the GPU objects.
func New() (*Session, error) {
	return internalgpu.New()
}

// IsAvailable checks if WebGPU is available on the current system. Useful
// for skipping shader assertions gracefully when no compatible GPU or
// native library is present.
func IsAvailable() bool {
	return internalgpu.IsAvailable()
}

// ListAdapters returns information about available GPU adapters.
func ListAdapters() ([]*wgpu.AdapterInfo, error) {
	return internalgpu.ListAdapters()
}
