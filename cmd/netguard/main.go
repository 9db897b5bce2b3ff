// netguard screens addresses against configurable allow and deny CIDR
// lists over a gRPC API.
package main

import (
	"context"
	"fmt"
	"os"

	app "github.com/avk-dev/netguard/internal"
	"github.com/urfave/cli/v3"
)

// Version info, injectable via -ldflags "-X main.Version=...".
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "netguard",
		Usage:   "address screening service over CIDR rule lists",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to YAML config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level (debug|info|warn|error)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.Run(cmd.String("config"), cmd.String("log-level"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
