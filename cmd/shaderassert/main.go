// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package main provides the shaderassert diagnostic CLI.
package main

import (
	"os"

	"github.com/gpudiag/shaderassert/cmd/shaderassert/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
