// Package main is the entry point for the clispect CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	ccli "github.com/clispect/clispect/internal/cli"
	"github.com/clispect/clispect/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	// The app introspects its own command tree, so the actions close
	// over the root command.
	var app *cli.Command

	app = &cli.Command{
		Name:                  "clispect",
		Usage:                 "Extract a serializable schema from a command-line application",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("CLISPECT_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "dump",
				Usage: "Print the schema document for this application's command tree",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: json or yaml",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ccli.Dump(ccli.DumpParams{
						Root:     app,
						LogLevel: cmd.String("log-level"),
						Format:   cmd.String("format"),
						Output:   cmd.String("output"),
					})
				},
			},
			{
				Name:  "show",
				Usage: "Render the command tree schema in the terminal",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "max-depth",
						Aliases: []string{"d"},
						Usage:   "Limit how deep subcommands are rendered (0 = unlimited)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ccli.Show(ccli.ShowParams{
						Root:     app,
						LogLevel: cmd.String("log-level"),
						MaxDepth: int(cmd.Int("max-depth")),
					})
				},
			},
			{
				Name:  "docs",
				Usage: "Generate markdown reference documentation for the command tree",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "template",
						Aliases: []string{"t"},
						Usage:   "Path to a custom documentation template",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return ccli.Docs(ccli.DocsParams{
						Root:     app,
						LogLevel: cmd.String("log-level"),
						Template: cmd.String("template"),
						Output:   cmd.String("output"),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a dumped schema document",
				ArgsUsage: "<document>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					path := ""
					if cmd.Args().Len() > 0 {
						path = cmd.Args().Get(0)
					}
					return ccli.Validate(path)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for dumped documents",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return ccli.Schema(outputPath)
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
