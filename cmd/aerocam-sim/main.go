// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/tomtom215/aerocam-hub/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, fs, err := parseOptions(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if opts.Help {
		fs.SetOutput(os.Stderr)
		fs.PrintDefaults()
		return nil
	}
	if err := opts.validate(); err != nil {
		return err
	}

	logging.Init(logging.Config{Level: opts.LogLevel, Format: "console", Timestamp: true})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sim, err := dialSimulator(ctx, opts)
	if err != nil {
		return err
	}
	defer sim.close()

	return sim.run(ctx)
}
