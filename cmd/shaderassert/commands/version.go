// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("shaderassert %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
