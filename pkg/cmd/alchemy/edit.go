package alchemy

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/robinbraemer/event"
	"github.com/urfave/cli/v2"
	"go.minekube.com/common/minecraft/component"

	"go.minekube.com/alchemy/pkg/color"
	"go.minekube.com/alchemy/pkg/item/meta"
	"go.minekube.com/alchemy/pkg/potion"
	"go.minekube.com/alchemy/pkg/util/componentutil"
	"go.minekube.com/alchemy/pkg/util/errs"
)

func editCommand(st *state) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Modify a potion item tag",
		ArgsUsage: "[snbt]",
		Description: `Modifies the potion given as stringified NBT argument, binary NBT file
or a new empty potion and outputs the resulting item tag.

Operations are applied in this order: clear, remove, add, main,
remove-color, color, name, lore.

	alchemy edit --add speed:90s:1 --add poison:200 --main poison
	alchemy edit --file potion.nbt --remove speed --color '#ff8800'

Effects are given as type[:duration[:amplifier]] where the duration is a
Go duration like 90s or 1m30s or a plain number of ticks.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Binary NBT file to edit",
			},
			&cli.StringSliceFlag{
				Name:    "add",
				Aliases: []string{"a"},
				Usage:   "Add an effect type[:duration[:amplifier]], can be repeated",
			},
			&cli.StringSliceFlag{
				Name:  "remove",
				Usage: "Remove the effect of a type, can be repeated",
			},
			&cli.StringFlag{
				Name:  "main",
				Usage: "Move the effect of a type to the top",
			},
			&cli.BoolFlag{
				Name:  "clear",
				Usage: "Remove all effects",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "Set the custom color: #rrggbb, 0xrrggbb, decimal or a name like orange. Join colors with + to mix them",
			},
			&cli.BoolFlag{
				Name:  "remove-color",
				Usage: "Remove the custom color",
			},
			&cli.BoolFlag{
				Name:  "overwrite",
				Usage: "Replace effects of the same type when adding (default from config)",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Set the display name, empty removes it",
			},
			&cli.StringSliceFlag{
				Name:  "lore",
				Usage: "Set the lore lines, can be repeated",
			},
			summaryFlag(),
		},
		Action: func(c *cli.Context) error {
			p, err := loadForEdit(c, st)
			if err != nil {
				return cli.Exit(err, 1)
			}

			overwrite := st.cfg.Overwrite
			if c.IsSet("overwrite") {
				overwrite = c.Bool("overwrite")
			}
			ops := editOps{
				clear:       c.Bool("clear"),
				remove:      c.StringSlice("remove"),
				add:         c.StringSlice("add"),
				overwrite:   overwrite,
				main:        c.String("main"),
				removeColor: c.Bool("remove-color"),
				color:       c.String("color"),
				name:        c.String("name"),
				setName:     c.IsSet("name"),
				lore:        c.StringSlice("lore"),
				setLore:     c.IsSet("lore"),
			}

			mgr := event.New()
			subscribeChangeLog(c.Context, mgr)
			edited := meta.Observe(p, mgr)
			if err = ops.apply(edited, st.reg, st.cfg.DefaultDuration); err != nil {
				return cli.Exit(err, 1)
			}
			mgr.Wait()

			if c.Bool("summary") {
				if err = writeSummary(c.App.ErrWriter, edited); err != nil {
					return err
				}
			}
			return writeTag(c.App.Writer, edited, st.cfg.Output)
		},
	}
}

func loadForEdit(c *cli.Context, st *state) (meta.Potion, error) {
	file := c.String("file")
	switch {
	case file != "" && c.NArg() != 0:
		return nil, fmt.Errorf("pass either an snbt argument or --file, not both")
	case c.NArg() > 1:
		return nil, fmt.Errorf("expected a single snbt argument")
	case file != "":
		return decodeFile(c.Context, file, st.reg)
	case c.NArg() == 1:
		return decodeSNBT(c.Context, c.Args().First(), st.reg)
	}
	return meta.NewPotion(), nil
}

type editOps struct {
	clear       bool
	remove      []string
	add         []string
	overwrite   bool
	main        string
	removeColor bool
	color       string
	name        string
	setName     bool
	lore        []string
	setLore     bool
}

func (o *editOps) apply(p meta.Potion, reg *potion.Registry, defaultDuration time.Duration) error {
	if o.clear {
		p.ClearCustomEffects()
	}
	for _, name := range o.remove {
		t, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		if _, err = p.RemoveCustomEffect(t); err != nil {
			return err
		}
	}
	for _, arg := range o.add {
		e, err := parseEffect(arg, reg, defaultDuration)
		if err != nil {
			return err
		}
		if _, err = p.AddCustomEffect(e, o.overwrite); err != nil {
			return err
		}
	}
	if o.main != "" {
		t, err := reg.Lookup(o.main)
		if err != nil {
			return err
		}
		if !p.HasCustomEffect(t) {
			return fmt.Errorf("cannot make %s the main effect, the potion does not have it", t)
		}
		if _, err = p.SetMainEffect(t); err != nil {
			return err
		}
	}
	if o.removeColor {
		p.RemoveColor()
	}
	if o.color != "" {
		col, err := color.ParseMix(o.color)
		if err != nil {
			return err
		}
		p.SetColor(col)
	}
	if o.setName {
		var name component.Component
		if o.name != "" {
			var err error
			if name, err = componentutil.ParseTextComponent(o.name); err != nil {
				return fmt.Errorf("invalid name %q: %w", o.name, err)
			}
		}
		p.SetDisplayName(name)
	}
	if o.setLore {
		lore := make([]component.Component, 0, len(o.lore))
		for _, l := range o.lore {
			line, err := componentutil.ParseTextComponent(l)
			if err != nil {
				return fmt.Errorf("invalid lore line %q: %w", l, err)
			}
			lore = append(lore, line)
		}
		p.SetLore(lore)
	}
	return nil
}

// parseEffect parses type[:duration[:amplifier]]. The type may be a
// namespaced key.
func parseEffect(arg string, reg *potion.Registry, defaultDuration time.Duration) (potion.Effect, error) {
	parts := strings.Split(arg, ":")
	var (
		t   *potion.EffectType
		err error
	)
	if len(parts) >= 2 {
		if nt, ok := reg.ByName(parts[0] + ":" + parts[1]); ok {
			t, parts = nt, parts[2:]
		}
	}
	if t == nil {
		if t, err = reg.Lookup(parts[0]); err != nil {
			return potion.Effect{}, err
		}
		parts = parts[1:]
	}
	if len(parts) > 2 {
		return potion.Effect{}, errs.InvalidArgument("invalid effect %q, want type[:duration[:amplifier]]", arg)
	}

	ticks := potion.Ticks(defaultDuration)
	if len(parts) >= 1 && parts[0] != "" {
		if ticks, err = parseTicks(parts[0]); err != nil {
			return potion.Effect{}, errs.InvalidArgument("invalid duration in effect %q: %v", arg, err)
		}
	}
	var amplifier int
	if len(parts) == 2 {
		if amplifier, err = strconv.Atoi(parts[1]); err != nil {
			return potion.Effect{}, errs.InvalidArgument("invalid amplifier in effect %q: %v", arg, err)
		}
	}
	e := potion.NewEffect(t, ticks, amplifier)
	return e, e.Validate()
}

// parseTicks parses a Go duration or a plain number of ticks.
func parseTicks(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return potion.Ticks(d), nil
}

// subscribeChangeLog logs every change made to observed potions.
func subscribeChangeLog(ctx context.Context, mgr event.Manager) {
	log := logr.FromContextOrDiscard(ctx).WithName("edit").V(1)
	event.Subscribe(mgr, 0, func(e *meta.PotionEffectAddEvent) {
		if old, ok := e.Replaced(); ok {
			log.Info("replaced effect", "old", old.String(), "new", e.Effect().String())
			return
		}
		log.Info("added effect", "effect", e.Effect().String())
	})
	event.Subscribe(mgr, 0, func(e *meta.PotionEffectRemoveEvent) {
		log.Info("removed effect", "effect", e.Effect().String())
	})
	event.Subscribe(mgr, 0, func(e *meta.PotionMainEffectEvent) {
		log.Info("changed main effect", "type", e.Type().String())
	})
	event.Subscribe(mgr, 0, func(e *meta.PotionEffectsClearEvent) {
		log.Info("cleared effects", "count", len(e.Effects()))
	})
	event.Subscribe(mgr, 0, func(e *meta.PotionColorChangeEvent) {
		if col, ok := e.Color(); ok {
			log.Info("set color", "color", col.String())
			return
		}
		log.Info("removed color")
	})
}
