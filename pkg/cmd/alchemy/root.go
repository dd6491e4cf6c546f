// Package alchemy is the alchemy command line interface.
package alchemy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"go.minekube.com/alchemy/pkg/config"
	"go.minekube.com/alchemy/pkg/potion"
	"go.minekube.com/alchemy/pkg/util/errs"
	"go.minekube.com/alchemy/pkg/util/interrupt"
	"go.minekube.com/alchemy/pkg/version"
)

// Execute runs App() and calls os.Exit when finished.
// Termination signals cancel the context of the running command.
func Execute() {
	ctx, cancel := interrupt.TerminationContext(context.Background())
	defer cancel()
	if err := App().RunContext(ctx, os.Args); err != nil {
		cancel()
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// state is shared by the commands of an App and set up before any
// command runs.
type state struct {
	cfg *config.Config
	reg *potion.Registry
}

func init() {
	// -v is taken by verbosity
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func App() *cli.App {
	app := cli.NewApp()
	app.Name = "alchemy"
	app.Usage = "Alchemy brews, edits and inspects Minecraft potion items."
	app.Description = `Alchemy works on the item tag of potions: the custom effects,
the custom color, the display name and lore.

	alchemy preset swiftness
	alchemy edit --add speed:90s:1 --color orange
	alchemy inspect '{CustomPotionEffects:[{Id:1b,Duration:3600}]}'`
	app.Version = version.String()

	var (
		debug      bool
		configFile string
		verbosity  int
		output     string
	)
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage: `config file (default: ./alchemy.yml)
Supports: yaml/yml, json, toml, hcl, ini, prop/properties/props, env/dotenv`,
			EnvVars:     []string{"ALCHEMY_CONFIG"},
			Destination: &configFile,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Usage:       "Enable debug mode and highest log verbosity",
			Destination: &debug,
			EnvVars:     []string{"ALCHEMY_DEBUG"},
		},
		&cli.IntFlag{
			Name:        "verbosity",
			Aliases:     []string{"v"},
			Usage:       "The higher the verbosity the more logs are shown",
			EnvVars:     []string{"ALCHEMY_VERBOSITY"},
			Destination: &verbosity,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Item tag output format: snbt, json, yaml or binary",
			EnvVars:     []string{"ALCHEMY_OUTPUT"},
			Destination: &output,
		},
	}

	st := new(state)
	app.Before = func(c *cli.Context) error {
		v := initViper(configFile)
		cfg, err := config.LoadConfig(v)
		missingConfig := errors.Is(err, errs.ErrMissingConfig)
		if err != nil && !missingConfig {
			return cli.Exit(err, 1)
		}

		// Flags override config
		if c.IsSet("debug") {
			cfg.Debug = debug
		}
		if c.IsSet("verbosity") {
			cfg.Verbosity = verbosity
		}
		if c.IsSet("output") {
			cfg.Output = config.Output(output)
		}
		if cfg.Debug && cfg.Verbosity < 1 {
			cfg.Verbosity = 1
		}

		log, err := newLogger(cfg.Debug, cfg.Verbosity)
		if err != nil {
			return cli.Exit(fmt.Errorf("error creating zap logger: %w", err), 1)
		}
		c.Context = logr.NewContext(c.Context, log)

		if missingConfig {
			log.V(1).Info("using default config", "reason", err)
		} else {
			log.V(1).Info("using config file", "config", v.ConfigFileUsed())
		}

		warns, err := config.Check(cfg)
		for _, w := range warns {
			log.Info("config validation warn", "warn", w.Error())
		}
		if err != nil {
			return cli.Exit(err, 1)
		}
		reg, err := cfg.Registry()
		if err != nil {
			return cli.Exit(err, 1)
		}
		st.cfg, st.reg = cfg, reg
		return nil
	}

	app.Commands = []*cli.Command{
		configCommand(),
		effectsCommand(st),
		presetCommand(st),
		inspectCommand(st),
		editCommand(st),
	}
	return app
}

func initViper(configFile string) *viper.Viper {
	v := viper.New()
	// Load Environment Variables
	v.SetEnvPrefix("ALCHEMY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile == "" {
		configFile = "alchemy.yml"
	}
	v.SetConfigFile(configFile)
	return v
}

// newLogger returns a new zap logger with a modified production
// or development default config to ensure human readability.
func newLogger(debug bool, v int) (l logr.Logger, err error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-v))
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = !debug
	cfg.Sampling = nil

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl), nil
}
