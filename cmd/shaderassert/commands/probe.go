// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gpudiag/shaderassert/gpu"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Show WebGPU adapter information",
	Long: `Display the WebGPU adapters visible on this system.

A machine with no usable adapter (or without the wgpu native library) cannot
host shader assertions; probe reports that without touching any GPU state
beyond adapter enumeration.`,
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	adapters, err := gpu.ListAdapters()
	if err != nil {
		fmt.Printf("WebGPU unavailable: %v\n", err)
		return err
	}

	for i, info := range adapters {
		fmt.Printf("Adapter %d:\n", i)
		fmt.Printf("  Name:    %s\n", info.Name)
		fmt.Printf("  Vendor:  %s\n", info.VendorName)
		fmt.Printf("  Backend: %v\n", info.BackendType)
	}
	return nil
}
