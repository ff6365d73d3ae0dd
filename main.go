package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cardgame24/engine"
	"cardgame24/experiments"
	"cardgame24/game"
	"cardgame24/meta"
	"cardgame24/player"
	"cardgame24/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// flag names
const (
	configFlagName   = "config"
	logLevelFlagName = "log-level"
	seedFlagName     = "seed"
	strictFlagName   = "strict"
	handFlagName     = "hand"
	outFlagName      = "out"
)

var handFlag = &cli.StringFlag{
	Name:     handFlagName,
	Usage:    "four card values, e.g. 1,2,3,4 or ace,2,3,4",
	Required: true,
}

func main() {
	var config meta.Config

	app := &cli.App{
		Name:  "cardgame24",
		Usage: "make 24 from four cards",
		Flags: globalFlags(),
		Before: func(ctx *cli.Context) error {
			var err error
			config, err = loadConfig(ctx)
			if err != nil {
				return err
			}
			setupLogging(config.Level())
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "play rounds in the terminal",
				Action: func(ctx *cli.Context) error {
					return player.NewPlayer(newEngine(config), os.Stdin, os.Stdout).Play()
				},
			},
			{
				Name:  "draw",
				Usage: "deal one hand",
				Action: func(ctx *cli.Context) error {
					round := newEngine(config).Deal()
					names := make([]string, len(round.Cards))
					for i, card := range round.Cards {
						names[i] = card.ImageName()
					}
					fmt.Printf("%v %s\n", round.Hand, strings.Join(names, " "))
					return nil
				},
			},
			{
				Name:      "check",
				Usage:     "check an expression against a hand",
				ArgsUsage: "EXPRESSION",
				Flags:     []cli.Flag{handFlag},
				Action: func(ctx *cli.Context) error {
					hand, err := game.ParseHand(ctx.String(handFlagName))
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}
					if ctx.NArg() == 0 {
						return cli.Exit("missing EXPRESSION", 2)
					}

					e := newEngine(config)
					verdict, err := e.Check(hand, strings.Join(ctx.Args().Slice(), " "))
					if err != nil {
						log.Debug().Err(err).Msg("check failed")
						return cli.Exit(e.Message(verdict, err), 1)
					}
					fmt.Println(e.Message(verdict, err))
					return nil
				},
			},
			{
				Name:  "solve",
				Usage: "find an expression for a hand",
				Flags: []cli.Flag{handFlag},
				Action: func(ctx *cli.Context) error {
					hand, err := game.ParseHand(ctx.String(handFlagName))
					if err != nil {
						return cli.Exit(err.Error(), 2)
					}
					fmt.Println(newEngine(config).FindSolution(hand))
					return nil
				},
			},
			{
				Name:  "survey",
				Usage: "solve every ordered hand and write CSV records",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: outFlagName, Usage: "output directory (overrides config)"},
				},
				Action: func(ctx *cli.Context) error {
					dir := config.SurveyDir
					if ctx.IsSet(outFlagName) {
						dir = ctx.String(outFlagName)
					}
					_, err := experiments.RunSurvey(dir, solverOptions(config)...)
					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("cardgame24 failed")
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: configFlagName, Usage: "YAML config file"},
		&cli.StringFlag{Name: logLevelFlagName, Usage: "log level (overrides config)"},
		&cli.Uint64Flag{Name: seedFlagName, Usage: "deck shuffle seed, 0 seeds from the clock"},
		&cli.BoolFlag{Name: strictFlagName, Usage: "each card value must be used exactly once"},
	}
}

// loadConfig reads the config file, if any, and lets flags that were set on
// the command line override its values.
func loadConfig(ctx *cli.Context) (meta.Config, error) {
	config := meta.Default()
	if path := ctx.String(configFlagName); path != "" {
		var err error
		if config, err = meta.Load(path); err != nil {
			return config, err
		}
	}

	if ctx.IsSet(logLevelFlagName) {
		config.LogLevel = ctx.String(logLevelFlagName)
	}
	if ctx.IsSet(seedFlagName) {
		config.Seed = ctx.Uint64(seedFlagName)
	}
	if ctx.IsSet(strictFlagName) {
		config.StrictCards = ctx.Bool(strictFlagName)
	}
	return config, config.Validate()
}

func setupLogging(level zerolog.Level) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(level)
}

func solverOptions(config meta.Config) []searcher.Option {
	return []searcher.Option{
		searcher.WithTarget(config.Target),
		searcher.WithTolerance(config.Tolerance),
	}
}

func newEngine(config meta.Config) *engine.Engine {
	return engine.NewEngine(
		engine.WithSeed(config.Seed),
		engine.WithStrictCards(config.StrictCards),
		engine.WithSolver(searcher.NewSolver(solverOptions(config)...)),
	)
}
