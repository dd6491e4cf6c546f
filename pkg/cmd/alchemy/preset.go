package alchemy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/maps"

	"go.minekube.com/alchemy/pkg/internal/suggest"
)

func presetCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "preset",
		Usage:     "Build a potion from a configured preset",
		ArgsUsage: "<name>",
		Description: `Builds the named preset of the config file and outputs its item tag.
Without a name the configured presets are listed.`,
		Flags: []cli.Flag{
			summaryFlag(),
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				for _, name := range presetNames(st) {
					_, _ = fmt.Fprintln(c.App.Writer, name)
				}
				return nil
			}
			if c.NArg() > 1 {
				return cli.Exit("expected a single preset name", 1)
			}
			name := strings.ToLower(c.Args().First())
			if _, ok := st.cfg.Presets[name]; !ok {
				msg := fmt.Sprintf("unknown preset %q", name)
				if s, ok := suggest.Closest(name, presetNames(st)); ok {
					msg += fmt.Sprintf(" (did you mean %q?)", s)
				}
				return cli.Exit(msg, 1)
			}

			p, err := st.cfg.Preset(name, st.reg)
			if err != nil {
				return cli.Exit(fmt.Errorf("error building preset %q: %w", name, err), 1)
			}
			logr.FromContextOrDiscard(c.Context).V(1).Info("built preset",
				"preset", name, "effects", len(p.CustomEffects()))

			if c.Bool("summary") {
				if err = writeSummary(c.App.ErrWriter, p); err != nil {
					return err
				}
			}
			return writeTag(c.App.Writer, p, st.cfg.Output)
		},
	}
}

func presetNames(st *state) []string {
	names := maps.Keys(st.cfg.Presets)
	sort.Strings(names)
	return names
}

func summaryFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "summary",
		Aliases: []string{"s"},
		Usage:   "Also print the potion as shown in game to stderr",
	}
}
