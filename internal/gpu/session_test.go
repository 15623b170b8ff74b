// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package gpu

import "testing"

func TestIsAvailable(t *testing.T) {
	available := IsAvailable()
	t.Logf("WebGPU available: %v", available)
	// Reports status only; absence of a GPU is not a failure.
}

func TestListAdapters(t *testing.T) {
	adapters, err := ListAdapters()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}

	for i, info := range adapters {
		t.Logf("Adapter %d: %s (%s, backend %v)", i, info.Name, info.VendorName, info.BackendType)
	}
}

func TestNew(t *testing.T) {
	sess, err := New()
	if err != nil {
		t.Logf("WebGPU not available: %v", err)
		t.Skip("WebGPU not available on this system")
	}
	defer sess.Release()

	if sess.Device() == nil {
		t.Error("session device should not be nil")
	}
	if sess.Queue() == nil {
		t.Error("session queue should not be nil")
	}
	if sess.Name() == "" {
		t.Error("session name should not be empty")
	}
	t.Logf("Using %s", sess.Name())
}

func TestReleaseTwice(t *testing.T) {
	sess, err := New()
	if err != nil {
		t.Skip("WebGPU not available on this system")
	}
	sess.Release()
	sess.Release() // must be a no-op
}
