/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalsign/cmd"
)

func main() {
	// Load an optional .env file before flags and env vars are read.
	_ = godotenv.Load()

	app := &cli.Command{
		Name:  "vitalsign",
		Usage: "Vitalsign - Health Risk Dashboard",
		Commands: []*cli.Command{
			cmd.CmdWeb,
			cmd.CmdAssess,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
