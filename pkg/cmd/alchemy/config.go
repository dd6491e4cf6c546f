package alchemy

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"go.minekube.com/alchemy/pkg/configs"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Output default configuration file",
		Description: `Output the default configuration file to stdout or a file.
You can redirect to a file or use the --write flag:

	alchemy config > alchemy.yml
	alchemy config --write              # Writes to alchemy.yml`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write config to alchemy.yml instead of stdout",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("write") {
				outputFile := "alchemy.yml"
				if _, err := os.Stat(outputFile); err == nil {
					return cli.Exit(fmt.Sprintf("%s already exists, remove it first", outputFile), 1)
				}
				err := os.WriteFile(outputFile, configs.DefaultConfigBytes, 0644)
				if err != nil {
					return cli.Exit(fmt.Errorf("error writing config to %q: %w", outputFile, err), 1)
				}
				_, _ = fmt.Fprintf(c.App.Writer, "Configuration written to %s\n", outputFile)
				return nil
			}

			_, err := c.App.Writer.Write(configs.DefaultConfigBytes)
			if err != nil {
				return cli.Exit(fmt.Errorf("error writing config: %w", err), 1)
			}
			return nil
		},
	}
}
