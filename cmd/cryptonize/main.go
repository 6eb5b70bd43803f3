// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// SPDX-License-Identifier: LGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cryptonize",
	Short: "cryptonize demonstrates the identity, key-exchange and messaging core",
	Long: `cryptonize is a demonstration CLI for the secure-messaging cryptographic
core: minting self-owned identities, exporting and importing them, issuing
subordinate instances, running the two-phase authenticated X25519 exchange
between two local parties, and sealing messages over the resulting channel.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	// Subcommands register themselves in their own files:
	// - user.go: new-user, export-user, import-user
	// - instance.go: generate-instance, import-instance
	// - simulate.go: simulate (two-party KEX + message round trip demo)
}
