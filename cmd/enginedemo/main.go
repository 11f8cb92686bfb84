// Command enginedemo drives the chesscore search engine against a single
// FEN position and prints the chosen move plus the per-depth progress
// trace. It is a demonstration harness only: the bot/game-service harness
// spec.md places out of scope is not this.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nkastor/chesscore/engine"
	"github.com/nkastor/chesscore/eval"
	"github.com/nkastor/chesscore/internal/config"
	"github.com/nkastor/chesscore/internal/logging"
	"github.com/nkastor/chesscore/position"
)

var (
	flagFEN        string
	flagVariant    string
	flagDepth      int
	flagTimeLimit  float64
	flagConfigPath string
	flagLogLevel   string
	flagPretty     bool
)

func main() {
	root := &cobra.Command{
		Use:   "enginedemo",
		Short: "Search a single chess position and print the chosen move",
		RunE:  runSearch,
	}

	root.Flags().StringVar(&flagFEN, "fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "FEN of the position to search")
	root.Flags().StringVar(&flagVariant, "variant", "standard", "standard | atomic | antichess | threeCheck")
	root.Flags().IntVar(&flagDepth, "depth", 0, "fixed search depth (0 = use --time instead)")
	root.Flags().Float64Var(&flagTimeLimit, "time", 5.0, "time budget in seconds, used when --depth is 0")
	root.Flags().StringVar(&flagConfigPath, "config", "", "path to a config file (optional)")
	root.Flags().StringVar(&flagLogLevel, "log-level", "info", "debug | info | warn | error")
	root.Flags().BoolVar(&flagPretty, "pretty", true, "human-readable log output")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	logging.New(logging.Options{Level: flagLogLevel, Pretty: flagPretty})

	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}

	variant := engine.Variant(flagVariant)

	var pos engine.Position
	var evaluator engine.Evaluator
	switch variant {
	case engine.Standard:
		p, err := position.FromFEN(flagFEN)
		if err != nil {
			return err
		}
		pos = p
		evaluator = eval.Material{}
	case engine.Antichess:
		p, err := position.FromFENVariant(flagFEN, variant)
		if err != nil {
			return err
		}
		pos = p
		evaluator = eval.Antichess{}
	case engine.ThreeCheck:
		p, err := position.FromFENVariant(flagFEN, variant)
		if err != nil {
			return err
		}
		pos = p
		evaluator = eval.ThreeCheck{}
	case engine.Atomic:
		p, err := position.FromFENVariant(flagFEN, variant)
		if err != nil {
			return err
		}
		pos = p
		evaluator = eval.Material{}
	default:
		return fmt.Errorf("unknown variant %q", flagVariant)
	}

	eng := engine.NewEngine(evaluator, cfg.Engine.Tuning(), cfg.Engine.TTSize, nil, engine.NewMathRand(1))

	sideSign := sideSignFromFEN(flagFEN)

	var move engine.Move
	var ok bool
	if flagDepth > 0 {
		move, ok, err = eng.SearchFixedDepth(pos, sideSign, variant, flagDepth)
	} else {
		move, ok, err = eng.SearchTimeLimited(pos, sideSign, variant, flagTimeLimit, 1, 20)
	}
	if err != nil {
		return err
	}
	if !ok {
		log.Info().Msg("no legal move (game over)")
		return nil
	}

	fmt.Printf("best move: %v\n", move)
	return nil
}

// sideSignFromFEN reads the side-to-move field ("w"/"b") straight out of
// the FEN string, so the caller never has to duplicate board parsing just
// to get the +1/-1 the façade expects.
func sideSignFromFEN(fen string) int {
	for i := 0; i < len(fen); i++ {
		if fen[i] == ' ' && i+1 < len(fen) {
			if fen[i+1] == 'b' {
				return -1
			}
			return 1
		}
	}
	return 1
}
