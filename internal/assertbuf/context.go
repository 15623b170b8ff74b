// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package assertbuf provisions the GPU-visible marker buffer that shader
// assertions write into, and emits the WGSL constructs that perform the
// write.
//
// The host side is a Context: one 32-byte storage buffer plus the bind group
// layout and bind group that expose it to shader code. The shader side is a
// pair of WGSL source fragments, a module-scope binding declaration and a
// conditional-store helper function, that consuming shaders splice into
// their source (see Instrument).
package assertbuf

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

const (
	// MarkerBufferSize is the size of the marker buffer in bytes. Only the
	// first word carries meaning; the rest is padding so the allocation has
	// a comfortable minimum size on every backend.
	MarkerBufferSize = 32

	// MarkerWords is the element count of the buffer viewed as array<u32>.
	MarkerWords = MarkerBufferSize / 4

	// Sentinel is the value a failed assertion stores into the first word of
	// the marker buffer. The specific bit pattern carries no meaning beyond
	// being recognizable; external readers must treat any non-zero first
	// word as "an assertion fired".
	Sentinel uint32 = 0x23898f4a
)

// Device is the subset of *wgpu.Device that Init uses. Accepting the
// interface keeps the provisioning sequence testable step by step.
type Device interface {
	CreateBuffer(descriptor *wgpu.BufferDescriptor) (*wgpu.Buffer, error)
	CreateBindGroupLayout(descriptor *wgpu.BindGroupLayoutDescriptor) (*wgpu.BindGroupLayout, error)
	CreateBindGroup(descriptor *wgpu.BindGroupDescriptor) (*wgpu.BindGroup, error)
}

// Compile-time check that the real device satisfies Device.
var _ Device = (*wgpu.Device)(nil)

// Release indirection, swapped out by tests that run Init against a fake
// device and need to observe the cleanup path.
var (
	releaseBuffer          = func(b *wgpu.Buffer) { b.Release() }
	releaseBindGroupLayout = func(l *wgpu.BindGroupLayout) { l.Release() }
	releaseBindGroup       = func(g *wgpu.BindGroup) { g.Release() }
)

// Context owns the GPU resources backing shader assertions: the marker
// buffer, the bind group layout describing its single read_write storage
// binding, and the bind group that binds it.
//
// The zero value is ready for Init. All three handles live until Release;
// the buffer's identity is stable for the lifetime of the context, so
// shader-side writes and host-side reads always refer to the same memory.
type Context struct {
	buffer    *wgpu.Buffer
	layout    *wgpu.BindGroupLayout
	bindGroup *wgpu.BindGroup
}

// Init creates the marker buffer, its bind group layout and its bind group.
// The sequence is fail-fast: the first failing step aborts the rest,
// releases anything created earlier in this call, and returns the wrapped
// underlying error. On success the caller binds BindGroup into the
// pipeline's descriptor tables before dispatching any shader that calls the
// assertion helper.
//
// Init is one-shot. Calling it again on the same context overwrites the
// owned handles without releasing the previous ones; initialize each
// context exactly once.
func (c *Context) Init(dev Device) error {
	// The buffer is zero-initialized by WebGPU; the all-zero first word is
	// the "no assertion fired" state, so no host-side write is needed here.
	buffer, err := dev.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ShaderAssert Marker Buffer",
		Size:  MarkerBufferSize,
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("shaderassert: create marker buffer: %w", err)
	}

	// Vertex visibility is deliberately absent: WebGPU forbids writable
	// storage bindings in the vertex stage on a default device (it needs
	// the native-only VERTEX_WRITABLE_STORAGE feature).
	layout, err := dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "ShaderAssert Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageFragment | wgpu.ShaderStageCompute,
			Buffer: wgpu.BufferBindingLayout{
				Type: wgpu.BufferBindingTypeStorage,
			},
		}},
	})
	if err != nil {
		releaseBuffer(buffer)
		return fmt.Errorf("shaderassert: create bind group layout: %w", err)
	}

	bindGroup, err := dev.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "ShaderAssert Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  buffer,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		releaseBindGroupLayout(layout)
		releaseBuffer(buffer)
		return fmt.Errorf("shaderassert: create bind group: %w", err)
	}

	c.buffer = buffer
	c.layout = layout
	c.bindGroup = bindGroup
	return nil
}

// BindGroup returns the bind group exposing the marker buffer, or nil before
// a successful Init. The caller sets it on render and compute passes at the
// group index the shader declaration was emitted with.
func (c *Context) BindGroup() *wgpu.BindGroup {
	return c.bindGroup
}

// BindGroupLayout returns the layout of the assert binding, or nil before a
// successful Init. Callers include it when building pipeline layouts for
// instrumented shaders.
func (c *Context) BindGroupLayout() *wgpu.BindGroupLayout {
	return c.layout
}

// Buffer returns the marker buffer itself, or nil before a successful Init.
// External diagnostic tooling reads it after a crash or hang is detected.
func (c *Context) Buffer() *wgpu.Buffer {
	return c.buffer
}

// Release drops all GPU resources owned by the context. Safe to call on a
// never-initialized or already-released context.
func (c *Context) Release() {
	if c.bindGroup != nil {
		releaseBindGroup(c.bindGroup)
		c.bindGroup = nil
	}
	if c.layout != nil {
		releaseBindGroupLayout(c.layout)
		c.layout = nil
	}
	if c.buffer != nil {
		releaseBuffer(c.buffer)
		c.buffer = nil
	}
}
