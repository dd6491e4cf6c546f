package alchemy

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"go.minekube.com/alchemy/pkg/item/meta"
	"go.minekube.com/alchemy/pkg/item/tag"
	"go.minekube.com/alchemy/pkg/potion"
	"go.minekube.com/alchemy/pkg/util/errs"
)

// maxParallelReads limits the files read at once.
const maxParallelReads = 8

func inspectCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Describe potion item tags",
		ArgsUsage: "[snbt...]",
		Description: `Decodes potion item tags given as stringified NBT arguments or binary
NBT files and prints them as shown in game.

	alchemy inspect '{CustomPotionEffects:[{Id:1b,Amplifier:1b,Duration:1800}]}'
	alchemy inspect --file potion.nbt --file other.nbt

Item stacks with the potion tag nested under "tag" are accepted too.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Binary NBT file to inspect, can be repeated",
			},
			&cli.BoolFlag{
				Name:  "tag",
				Usage: "Also print the item tag in the output format",
			},
		},
		Action: func(c *cli.Context) error {
			files := c.StringSlice("file")
			if c.NArg() == 0 && len(files) == 0 {
				return cli.Exit("nothing to inspect, pass snbt arguments or --file", 1)
			}

			var potions []inspected
			for _, s := range c.Args().Slice() {
				p, err := decodeSNBT(c.Context, s, st.reg)
				if err != nil {
					return cli.Exit(err, 1)
				}
				potions = append(potions, inspected{source: "argument", potion: p})
			}
			fromFiles, err := decodeFiles(c.Context, files, st.reg)
			if err != nil {
				return cli.Exit(err, 1)
			}
			potions = append(potions, fromFiles...)

			for i, in := range potions {
				if len(potions) > 1 {
					if i != 0 {
						_, _ = fmt.Fprintln(c.App.Writer)
					}
					_, _ = fmt.Fprintf(c.App.Writer, "# %s\n", in.source)
				}
				if err = writeSummary(c.App.Writer, in.potion); err != nil {
					return err
				}
				if c.Bool("tag") {
					if err = writeTag(c.App.Writer, in.potion, st.cfg.Output); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

type inspected struct {
	source string
	potion meta.Potion
}

// decodeFiles reads and decodes the files concurrently. The result keeps
// the order of files.
func decodeFiles(ctx context.Context, files []string, reg *potion.Registry) ([]inspected, error) {
	result := make([]inspected, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxParallelReads)
	for i, name := range files {
		eg.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p, err := decodeFile(ctx, name, reg)
			if err != nil {
				return fmt.Errorf("error inspecting %q: %w", name, err)
			}
			result[i] = inspected{source: name, potion: p}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func decodeFile(ctx context.Context, name string, reg *potion.Registry) (meta.Potion, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := tag.Read(f)
	if err != nil {
		return nil, fmt.Errorf("error reading binary tag: %w", err)
	}
	return decodePotion(logr.FromContextOrDiscard(ctx).WithValues("file", name), c, reg)
}

func decodeSNBT(ctx context.Context, snbt string, reg *potion.Registry) (meta.Potion, error) {
	c, err := tag.ParseSNBT(snbt)
	if err != nil {
		return nil, err
	}
	return decodePotion(logr.FromContextOrDiscard(ctx), c, reg)
}

// decodePotion decodes c, or its "tag" compound if c is an item stack,
// and logs skipped effects.
func decodePotion(log logr.Logger, c tag.Compound, reg *potion.Registry) (meta.Potion, error) {
	if nested, ok := c.Compound("tag"); ok {
		if id, ok := c.String("id"); ok {
			log.V(1).Info("decoding tag of item stack", "item", id)
		}
		c = nested
	}
	p, err := tag.DecodePotion(c, reg)
	if err != nil {
		if !errs.IsSilent(err) {
			return nil, err
		}
		log.Info("skipped invalid effects", "reason", err.Error())
	}
	return p, nil
}
