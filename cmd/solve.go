package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbj42/hamilton/internal/grid"
	"github.com/sbj42/hamilton/internal/solver"
)

var (
	solveSize     string
	solveDiagonal bool
	solveEasy     bool
	solveUnique   bool
	solveSteps    int
	solveMaxGap   int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <description>",
		Short: "Solve a Hamilton puzzle",
		Long: `Solve a puzzle given as a description string: a comma-separated
list of cell values in row-major order, with empty cells left blank.

Examples:
  hamilton solve --size 4x4 ",,4,3,,,,,,7,,9,,,,"
  hamilton solve --size 5x5 --diagonal --unique "1,,,,,,8,,,,,,,,,,,,,,,,,,25"`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveSize, "size", "s", "", "Grid size, like 7x7 (required)")
	solveCmd.Flags().BoolVarP(&solveDiagonal, "diagonal", "d", false, "Allow diagonal path segments")
	solveCmd.Flags().BoolVar(&solveEasy, "easy", false, "Use only necessary moves (no guess-work)")
	solveCmd.Flags().BoolVarP(&solveUnique, "unique", "u", false, "Fail unless the solution is unique")
	solveCmd.Flags().IntVar(&solveSteps, "steps", -1, "Step limit for the recursive search (-1 = no limit)")
	solveCmd.Flags().IntVar(&solveMaxGap, "max-gap", -1, "Give up if a gap is longer than this (-1 = no limit)")
	solveCmd.MarkFlagRequired("size")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	w, h, err := parseSize(solveSize)
	if err != nil {
		return err
	}

	g, err := grid.Parse(args[0], w, h)
	if err != nil {
		return err
	}
	if g.ClueCount() == 0 {
		return fmt.Errorf("puzzle has no clues")
	}

	difficulty := solver.Hard
	if solveEasy {
		difficulty = solver.Easy
	}

	sol, err := solver.Solve(g, &solver.Options{
		Diagonal:      solveDiagonal,
		MaxGapLength:  solveMaxGap,
		MaxDifficulty: difficulty,
		StepLimit:     solveSteps,
		UniqueOnly:    solveUnique,
	})
	switch {
	case errors.Is(err, solver.ErrMultipleSolutions):
		return fmt.Errorf("puzzle has more than one solution")
	case errors.Is(err, solver.ErrStepLimit):
		return fmt.Errorf("gave up after %d steps", solveSteps)
	case err != nil:
		return err
	}

	fmt.Println(sol.Format())
	return nil
}
