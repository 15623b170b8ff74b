// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package gpu stands up a WebGPU device for hosts that do not already own
// one: the example programs, the diagnostic CLI and the integration tests.
// Applications embedding shaderassert in an existing renderer pass their own
// device to Context.Init and never touch this package.
package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Session owns one instance/adapter/device/queue chain.
type Session struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	info     wgpu.AdapterInfo
}

// New creates a session on the highest-performance available adapter.
// Returns an error if WebGPU is not available or initialization fails.
func New() (s *Session, err error) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("gpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)

	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("gpu: request adapter: %w", adapterErr)
	}

	info := adapter.GetInfo()

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("gpu: request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("gpu: device has no queue")
	}

	return &Session{
		instance: instance,
		adapter:  adapter,
		device:   device,
		queue:    queue,
		info:     info,
	}, nil
}

// Device returns the logical device.
func (s *Session) Device() *wgpu.Device {
	return s.device
}

// Queue returns the device's default queue.
func (s *Session) Queue() *wgpu.Queue {
	return s.queue
}

// AdapterInfo returns information about the GPU adapter.
func (s *Session) AdapterInfo() wgpu.AdapterInfo {
	return s.info
}

// Name returns a human-readable description of the adapter.
func (s *Session) Name() string {
	return fmt.Sprintf("WebGPU (%s %s)", s.info.Name, s.info.VendorName)
}

// Release releases all WebGPU objects owned by the session, in reverse
// creation order. Must be called when the session is no longer needed.
func (s *Session) Release() {
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.device != nil {
		s.device.Release()
		s.device = nil
	}
	if s.adapter != nil {
		s.adapter.Release()
		s.adapter = nil
	}
	if s.instance != nil {
		s.instance.Release()
		s.instance = nil
	}
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() (available bool) {
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// ListAdapters returns information about available GPU adapters. WebGPU
// exposes no enumeration, so this reports the default adapter only.
func ListAdapters() (adapters []*wgpu.AdapterInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			adapters = nil
			err = fmt.Errorf("gpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, adapterErr := instance.RequestAdapter(nil)
	if adapterErr != nil {
		return nil, fmt.Errorf("gpu: no adapters available: %w", adapterErr)
	}
	defer adapter.Release()

	info := adapter.GetInfo()

	return []*wgpu.AdapterInfo{&info}, nil
}
