// Copyright 2026 the shaderassert authors. All rights reserved.
// Use of this source code is governed by an MIT
// license that can be found in the LICENSE file.

package commands

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gpudiag/shaderassert"
	"github.com/gpudiag/shaderassert/gpu"
)

var selftestWorkgroups uint32

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the shader assertion round trip on this machine",
	Long: `Provision the assertion marker buffer, dispatch an instrumented compute
shader twice (once with a passing condition, once with a failing one), and
read the marker back after each run.

Exits non-zero if the passing run left a mark, or if the failing run's
sentinel did not land.`,
	RunE: runSelftest,
}

func init() {
	selftestCmd.Flags().Uint32Var(&selftestWorkgroups, "workgroups", 64, "number of 64-wide workgroups to dispatch")
	rootCmd.AddCommand(selftestCmd)
}

func runSelftest(cmd *cobra.Command, args []string) error {
	sess, err := gpu.New()
	if err != nil {
		return fmt.Errorf("bootstrap device: %w", err)
	}
	defer sess.Release()
	log.Debugf("using %s", sess.Name())

	var ctx shaderassert.Context
	if err := ctx.Init(sess.Device()); err != nil {
		return err
	}
	defer ctx.Release()

	// Passing run: the marker must stay zero.
	if err := runAssertShader(sess, &ctx, "true", selftestWorkgroups); err != nil {
		return err
	}
	word, err := ctx.ReadMarker(sess.Device(), sess.Queue())
	if err != nil {
		return err
	}
	if word != 0 {
		return fmt.Errorf("passing assertion left marker 0x%08x, want 0", word)
	}
	fmt.Println("pass condition: marker clear")

	// Failing run: every invocation stores the sentinel.
	if err := runAssertShader(sess, &ctx, "false", selftestWorkgroups); err != nil {
		return err
	}
	word, err = ctx.ReadMarker(sess.Device(), sess.Queue())
	if err != nil {
		return err
	}
	if word == 0 {
		return errors.New("failing assertion did not mark the buffer")
	}
	if word != shaderassert.Sentinel {
		return fmt.Errorf("marker is 0x%08x, want sentinel 0x%08x", word, shaderassert.Sentinel)
	}
	fmt.Printf("fail condition: sentinel 0x%08x observed\n", word)

	fmt.Println("selftest OK")
	return nil
}
