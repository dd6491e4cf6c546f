package alchemy

import (
	"fmt"
	"text/tabwriter"

	"github.com/gookit/color"
	"github.com/urfave/cli/v2"

	"go.minekube.com/alchemy/pkg/potion"
)

func effectsCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:  "effects",
		Usage: "List the known effect types",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "category",
				Usage: "Only list effects of a category: beneficial, harmful or neutral",
			},
		},
		Action: func(c *cli.Context) error {
			category := c.String("category")
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tKEY\tNAME\tCATEGORY\tCOLOR\t")
			for _, t := range st.reg.All() {
				if category != "" && category != t.Category.String() {
					continue
				}
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t\n",
					t.ID, t.String(), t.Name, describeCategory(t), swatch(t))
			}
			return tw.Flush()
		},
	}
}

func describeCategory(t *potion.EffectType) string {
	if t.Instant {
		return t.Category.String() + " (instant)"
	}
	return t.Category.String()
}

func swatch(t *potion.EffectType) string {
	hex := t.Color.Hex()
	return color.HEX(hex).Sprint("██") + " " + hex
}
