/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main runs the OIDC4VCI credential issuer REST API.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/vcissuer/issuer/cmd/issuer-rest/startcmd"
)

var logger = log.New("issuer-rest")
var Version string // will be embeded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "issuer-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(
		startcmd.WithVersion(Version),
		startcmd.WithServerVersion(os.Getenv("ISSUER_SERVER_VERSION")),
	))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run issuer-rest", log.WithError(err))
	}
}
