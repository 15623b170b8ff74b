// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package assertbuf

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ReadMarker copies the marker buffer through a staging buffer and returns
// its first word. Zero means no assertion fired since creation or the last
// Reset; any non-zero value means at least one assertion fired (the expected
// pattern is Sentinel).
//
// The copy is submitted on q and the call blocks until the staging buffer is
// mapped. Storage buffers cannot be mapped directly, hence the staging hop.
func (c *Context) ReadMarker(dev *wgpu.Device, q *wgpu.Queue) (uint32, error) {
	if c.buffer == nil {
		return 0, errors.New("shaderassert: context not initialized")
	}

	staging, err := dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ShaderAssert Staging Buffer",
		Size:  MarkerBufferSize,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return 0, fmt.Errorf("shaderassert: create staging buffer: %w", err)
	}
	defer staging.Release()

	encoder, err := dev.CreateCommandEncoder(nil)
	if err != nil {
		return 0, fmt.Errorf("shaderassert: create command encoder: %w", err)
	}
	encoder.CopyBufferToBuffer(c.buffer, 0, staging, 0, MarkerBufferSize)
	commands, err := encoder.Finish(nil)
	if err != nil {
		return 0, fmt.Errorf("shaderassert: finish command encoder: %w", err)
	}
	defer commands.Release()
	q.Submit(commands)

	done := make(chan wgpu.BufferMapAsyncStatus, 1)
	err = staging.MapAsync(wgpu.MapModeRead, 0, MarkerBufferSize, func(status wgpu.BufferMapAsyncStatus) {
		done <- status
	})
	if err != nil {
		return 0, fmt.Errorf("shaderassert: map staging buffer: %w", err)
	}
	dev.Poll(true, nil)
	if status := <-done; status != wgpu.BufferMapAsyncStatusSuccess {
		return 0, fmt.Errorf("shaderassert: map staging buffer: status %v", status)
	}

	data := staging.GetMappedRange(0, uint(MarkerBufferSize))
	word := binary.LittleEndian.Uint32(data[:4])
	staging.Unmap()

	return word, nil
}

// Fired reports whether any assertion has fired, per ReadMarker's contract.
func (c *Context) Fired(dev *wgpu.Device, q *wgpu.Queue) (bool, error) {
	word, err := c.ReadMarker(dev, q)
	if err != nil {
		return false, err
	}
	return word != 0, nil
}

// Reset restores the marker buffer to the all-zero "no assertion fired"
// state. Callers use it between runs when reusing one context; it must not
// race with in-flight shader work.
func (c *Context) Reset(q *wgpu.Queue) {
	if c.buffer == nil {
		return
	}
	q.WriteBuffer(c.buffer, 0, make([]byte, MarkerBufferSize))
}
