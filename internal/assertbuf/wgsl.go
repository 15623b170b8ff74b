// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package assertbuf

import "fmt"

// BindingName is the library-reserved identifier of the marker binding in
// WGSL. Shader code must not declare anything else under this name.
const BindingName = "shader_assert_marker"

// ResourceDeclaration returns the module-scope declaration of the marker
// binding at the given group and binding indices. The storage address space
// gives device-scope coherence: a store from any invocation lands in the
// buffer once the device work completes, which is what lets an external
// reader observe it after a crash or hang.
func ResourceDeclaration(group, binding uint32) string {
	return fmt.Sprintf("@group(%d) @binding(%d) var<storage, read_write> %s: array<u32, %d>;\n",
		group, binding, BindingName, MarkerWords)
}

// AssertFunction returns the WGSL helper:
//
//	shader_assert(ok)
//
// stores Sentinel into the first word of the marker buffer when ok is false
// and does nothing otherwise. The body is a self-contained braced statement,
// so a call is safe in any position a single statement may occupy.
//
// Invocations may race on the store; every writer stores the same 32-bit
// constant, so the race is benign and no synchronization is used. Adding
// atomics here would only perturb the timing of the shader under diagnosis.
func AssertFunction() string {
	return fmt.Sprintf(`fn shader_assert(ok: bool) {
    if (!ok) {
        %s[0] = 0x%08xu;
    }
}
`, BindingName, Sentinel)
}

// Prelude returns the resource declaration followed by the assertion helper,
// ready to be placed ahead of any shader code that calls shader_assert.
func Prelude(group, binding uint32) string {
	return ResourceDeclaration(group, binding) + "\n" + AssertFunction()
}

// Instrument prepends the assertion prelude to source. The caller remains
// responsible for binding the context's bind group at the same group index
// before dispatching.
func Instrument(source string, group, binding uint32) string {
	return Prelude(group, binding) + "\n" + source
}
