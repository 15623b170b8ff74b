// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package shaderassert lets WGSL shader code signal an assertion failure by
// writing a sentinel value into a small GPU-visible buffer, so host-side
// diagnostic tooling can localize shader bugs that would otherwise show up
// as silent corruption or an unexplained device loss.
//
// The host provisions the buffer once per device and binds it alongside the
// shader's own resources; the shader declares the binding and calls
// shader_assert(condition) wherever an invariant should hold:
//
//	var ctx shaderassert.Context
//	if err := ctx.Init(device); err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Release()
//
//	source := shaderassert.Instrument(myShaderSource, 1, 0)
//	// build the pipeline layout with ctx.BindGroupLayout() at group 1,
//	// set ctx.BindGroup() on the pass, dispatch as usual.
//
// After the device work completes (or after a crash is detected by an
// external capture mechanism), a zero first word in the buffer means no
// assertion fired; any non-zero value means at least one did.
package shaderassert

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gpudiag/shaderassert/internal/assertbuf"
)

// Context owns the marker buffer, bind group layout and bind group backing
// shader assertions. The zero value is ready for Init.
type Context = assertbuf.Context

// Device is the subset of *wgpu.Device that Context.Init uses.
type Device = assertbuf.Device

// Compile-time check that the real device satisfies Device.
var _ Device = (*wgpu.Device)(nil)

const (
	// MarkerBufferSize is the size of the marker buffer in bytes.
	MarkerBufferSize = assertbuf.MarkerBufferSize

	// MarkerWords is the element count of the buffer viewed as array<u32>.
	MarkerWords = assertbuf.MarkerWords

	// Sentinel is the value a failed assertion stores into the first word of
	// the marker buffer.
	Sentinel = assertbuf.Sentinel

	// BindingName is the library-reserved WGSL identifier of the marker
	// binding.
	BindingName = assertbuf.BindingName
)

// ResourceDeclaration returns the module-scope WGSL declaration of the
// marker binding at the given group and binding indices.
func ResourceDeclaration(group, binding uint32) string {
	return assertbuf.ResourceDeclaration(group, binding)
}

// AssertFunction returns the WGSL shader_assert helper function.
func AssertFunction() string {
	return assertbuf.AssertFunction()
}

// Prelude returns the resource declaration followed by the assertion helper.
func Prelude(group, binding uint32) string {
	return assertbuf.Prelude(group, binding)
}

// Instrument prepends the assertion prelude to a WGSL source string.
func Instrument(source string, group, binding uint32) string {
	return assertbuf.Instrument(source, group, binding)
}
