// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	log "github.com/sirupsen/logrus"

	"github.com/gpudiag/shaderassert"
	"github.com/gpudiag/shaderassert/gpu"
)

// runAssertShader dispatches an instrumented compute shader that calls
// shader_assert(condition) once per invocation, across the given number of
// 64-wide workgroups.
func runAssertShader(sess *gpu.Session, ctx *shaderassert.Context, condition string, workgroups uint32) error {
	dev := sess.Device()

	source := shaderassert.Instrument(fmt.Sprintf(`@compute @workgroup_size(64)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    shader_assert(%s);
}
`, condition), 0, 0)
	log.Debugf("instrumented shader:\n%s", source)

	module, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "selftest shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: source,
		},
	})
	if err != nil {
		return fmt.Errorf("create shader module: %w", err)
	}
	defer module.Release()

	pipelineLayout, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "selftest pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{ctx.BindGroupLayout()},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	pipeline, err := dev.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  "selftest pipeline",
		Layout: pipelineLayout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     module,
			EntryPoint: "main",
		},
	})
	if err != nil {
		return fmt.Errorf("create compute pipeline: %w", err)
	}
	defer pipeline.Release()

	encoder, err := dev.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, ctx.BindGroup(), nil)
	pass.DispatchWorkgroups(workgroups, 1, 1)
	pass.End()

	commands, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finish command encoder: %w", err)
	}
	defer commands.Release()

	sess.Queue().Submit(commands)
	return nil
}
