// Command sudograph solves a Sudoku puzzle file as a graph-coloring
// problem over a persisted graph store.
//
// Usage:
//
//	sudograph <store-path> <puzzle-file>
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudograph/store"
	"github.com/katalvlaran/sudograph/sudoku"
)

var (
	flagInMemory bool
	flagVerbose  bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sudograph <store-path> <puzzle-file>",
		Short: "Solve Sudoku as graph coloring over a persisted graph store",
		Long: "sudograph builds a constraint graph (81 cells, 810 conflict edges) in a\n" +
			"graph store rooted at <store-path>, backtracks to a legal coloring, and\n" +
			"prints the solved grid with the original clues highlighted.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().BoolVar(&flagInMemory, "in-memory", false, "skip persistence; <store-path> is ignored")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	storePath, puzzlePath := args[0], args[1]

	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts := []store.Option{store.WithLogger(logger)}
	if !flagInMemory {
		opts = append(opts, store.WithPath(storePath))
	}
	st, err := store.Open(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Error("closing store", slog.Any("error", cerr))
		}
	}()

	clues, err := sudoku.ParseProblemFile(puzzlePath)
	if err != nil {
		return err
	}

	puzzle, err := sudoku.Build(st, clues)
	if err != nil {
		return err
	}
	logger.Debug("constraint graph built",
		slog.Int("nodes", st.NodeCount()),
		slog.Int("edges", st.EdgeCount()))

	if err = puzzle.Solve(); err != nil {
		if errors.Is(err, sudoku.ErrNoSolution) {
			return fmt.Errorf("puzzle %s: %w", puzzlePath, err)
		}
		return err
	}

	grid, err := puzzle.Solution()
	if err != nil {
		return err
	}

	return sudoku.FormatGrid(cmd.OutOrStdout(), grid, clues)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sudograph:", err)
		os.Exit(1)
	}
}
