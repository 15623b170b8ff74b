// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

// Package commands implements the shaderassert CLI command tree.
package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "shaderassert",
	Short: "WebGPU shader assertion diagnostics",
	Long: `shaderassert probes the WebGPU environment and exercises the shader
assertion substrate end to end: it provisions the marker buffer, runs an
instrumented compute shader, and reads the marker back.

Use it to verify that shader assertions will be observable on a given
machine before wiring them into an application.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("SHADERASSERT")
	viper.AutomaticEnv()
}
