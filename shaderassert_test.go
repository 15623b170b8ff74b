// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package shaderassert_test

import (
	"fmt"

	"github.com/gpudiag/shaderassert"
)

func ExampleResourceDeclaration() {
	fmt.Print(shaderassert.ResourceDeclaration(1, 0))
	// Output: @group(1) @binding(0) var<storage, read_write> shader_assert_marker: array<u32, 8>;
}

func ExampleAssertFunction() {
	fmt.Print(shaderassert.AssertFunction())
	// Output:
	// fn shader_assert(ok: bool) {
	//     if (!ok) {
	//         shader_assert_marker[0] = 0x23898f4au;
	//     }
	// }
}
