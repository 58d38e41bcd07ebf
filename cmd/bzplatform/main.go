// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bzplatform is a demo of the platform layer: it opens
// windows drawing Shadertoy shaders and logs all input events.
//
// Keys: F12 quits, N starts text input (Enter finishes and Escape
// cancels it), X centers the mouse, C cycles mouse confinement, M
// switches between mouse and joystick input, T prints the game time,
// F4 iconifies the window and G toggles the gamma. Dragging with the
// left mouse button moves the shader's mouse position.
package main

import (
	"os"

	"bzflag.org/platform/base/logx"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// flags are the command line flags.
type flags struct {
	config      string
	verbose     bool
	veryVerbose bool
	quiet       bool
	fullscreen  bool
	watch       bool
	yaml        bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "bzplatform",
		Short:        "Open shader windows and log platform input events",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.veryVerbose || f.verbose || f.quiet {
				logx.UserLevel = logx.LevelFromFlags(f.veryVerbose, f.verbose, f.quiet)
			}
			logx.SetDefaultLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "TOML or YAML configuration file")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&f.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	pf.BoolVar(&f.fullscreen, "fullscreen", false, "open fullscreen windows, one per monitor")
	pf.BoolVar(&f.watch, "watch", false, "reload shaders when their files change")

	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the configuration in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig(cmd)
			if err != nil {
				return err
			}
			return WriteConfig(cfg, cmd.OutOrStdout(), f.yaml)
		},
	}
	cfgCmd.Flags().BoolVar(&f.yaml, "yaml", false, "print YAML instead of TOML")
	root.AddCommand(cfgCmd)
	return root
}

// loadConfig loads the configuration file and applies the
// flags that were given on top of it.
func (f *flags) loadConfig(cmd *cobra.Command) (*Config, error) {
	cfg, err := LoadConfig(f.config)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("fullscreen") {
		cfg.Fullscreen = f.fullscreen
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = f.watch
	}
	return cfg, nil
}
