// SPDX-License-Identifier: AGPL-3.0-or-later

// Command sven lints commit headers against the Conventional Commits grammar.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bartekus/sven/cmd/sven/commands"
	"github.com/bartekus/sven/cmd/sven/internal/clierr"
)

// version is stamped at build time:
//
//	go build -ldflags "-X main.version=1.2.3" ./cmd/sven
var version string

func main() {
	if version != "" {
		commands.Version = version
	}

	// history and watch stop cleanly on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(clierr.ExitCodeOf(err))
	}
}
