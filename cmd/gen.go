package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sbj42/hamilton/internal/generator"
	"github.com/sbj42/hamilton/internal/grid"
	"github.com/sbj42/hamilton/internal/preset"
	"github.com/sbj42/hamilton/internal/solver"
)

var (
	numPuzzles  int
	size        string
	diagonal    bool
	keepEnds    bool
	pattern     string
	difficulty  string
	seed        int64
	presetName  string
	presetsFile string
	timeout     time.Duration
	outputFile  string
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Hamilton puzzles",
		Long: `Generate one or more Hamilton puzzles with the given grid size,
clue pattern, and difficulty level.

Examples:
  hamilton gen --size 7x7 --pattern rot2 --difficulty easy
  hamilton gen -n 5 --size 9x9 --difficulty hard --keep-ends
  hamilton gen --preset "7x7 Ring" -o puzzles.html`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&size, "size", "s", "7x7", "Grid size, like 7x7 or 6x9")
	genCmd.Flags().BoolVarP(&diagonal, "diagonal", "d", false, "Allow diagonal path segments")
	genCmd.Flags().BoolVarP(&keepEnds, "keep-ends", "k", false, "Keep the first and last number as clues")
	genCmd.Flags().StringVarP(&pattern, "pattern", "p", "rot2", "Clue pattern: none, rot2, ring, or border")
	genCmd.Flags().StringVar(&difficulty, "difficulty", "easy", "Difficulty: easy or hard")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible puzzles (0 = random)")
	genCmd.Flags().StringVar(&presetName, "preset", "", "Use a named preset instead of individual flags")
	genCmd.Flags().StringVar(&presetsFile, "presets-file", "", "Load additional presets from a TOML file")
	genCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Generation timeout per puzzle")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzles.html)")

	rootCmd.AddCommand(genCmd)
}

// parseSize parses a grid size string, which can be a single number like
// "7" (square) or a pair like "7x9".
func parseSize(s string) (w, h int, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	switch len(parts) {
	case 1:
		w, err = strconv.Atoi(strings.TrimSpace(parts[0]))
		return w, w, err
	case 2:
		w, err = strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, err
		}
		h, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		return w, h, err
	}
	return 0, 0, fmt.Errorf("invalid size %q (use a format like '7' or '7x9')", s)
}

// genOptions resolves generator options from the preset and flags. Flags
// the user set explicitly override the preset.
func genOptions(cmd *cobra.Command) (*generator.Options, error) {
	opts := generator.DefaultOptions()

	if presetName != "" {
		presets := preset.Builtin()
		if presetsFile != "" {
			extra, err := preset.Load(presetsFile)
			if err != nil {
				return nil, err
			}
			presets = append(presets, extra...)
		}
		p, ok := preset.Find(presets, presetName)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", presetName)
		}
		var err error
		if opts, err = p.Options(); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("size") || presetName == "" {
		w, h, err := parseSize(size)
		if err != nil {
			return nil, err
		}
		opts.Width, opts.Height = w, h
	}
	if cmd.Flags().Changed("diagonal") {
		opts.Diagonal = diagonal
	}
	if cmd.Flags().Changed("keep-ends") {
		opts.KeepEnds = keepEnds
	}
	if cmd.Flags().Changed("pattern") || presetName == "" {
		p, err := generator.ParsePattern(pattern)
		if err != nil {
			return nil, err
		}
		opts.Pattern = p
	}
	if cmd.Flags().Changed("difficulty") || presetName == "" {
		d, err := solver.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		opts.Difficulty = d
	}
	opts.Seed = seed
	opts.Timeout = timeout

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// generated holds one generated puzzle for output.
type generated struct {
	id       string
	puzzle   *grid.Grid
	solution *grid.Grid
}

func runGen(cmd *cobra.Command, args []string) error {
	opts, err := genOptions(cmd)
	if err != nil {
		return err
	}

	gen := generator.New(opts)
	results := make([]generated, 0, numPuzzles)
	for i := 0; i < numPuzzles; i++ {
		puzzle, solution, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		results = append(results, generated{
			id:       uuid.New().String(),
			puzzle:   puzzle,
			solution: solution,
		})
	}

	if outputFile != "" {
		filename := outputFile
		if filepath.Ext(filename) != ".html" {
			filename += ".html"
		}
		if err := writeHTML(filename, results); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", len(results), filename)
		return nil
	}

	for i, r := range results {
		fmt.Printf("Puzzle #%d (%s):\n", i+1, r.id)
		fmt.Println(r.puzzle.Format())
		fmt.Println("Description:", r.puzzle.String())
		fmt.Println("\nSolution:")
		fmt.Println(r.solution.Format())
		fmt.Println()
	}
	return nil
}

// writeHTML creates an HTML file with puzzles, one per page.
func writeHTML(filename string, results []generated) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Hamilton Puzzles</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 800px;
            margin: 0 auto;
            padding: 20px;
        }
        .page {
            page-break-after: always;
            padding: 40px;
        }
        .id {
            color: #999;
            font-size: 0.8em;
        }
        .hamilton-grid table {
            border-collapse: collapse;
            margin: 20px auto;
        }
        .hamilton-grid td {
            width: 40px;
            height: 40px;
            text-align: center;
            vertical-align: middle;
            border: 1px solid #333;
            font-size: 20px;
        }
        .hamilton-grid td.empty {
            color: #ccc;
        }
    </style>
</head>
<body>
`)
	if err != nil {
		return err
	}

	for i, r := range results {
		_, err = fmt.Fprintf(file, `    <div class="page">
        <h1>Hamilton Puzzle #%d</h1>
        <p class="id">%s</p>
        <h2>Puzzle</h2>
        %s
        <h2>Solution</h2>
        %s
    </div>
`, i+1, r.id, gridToHTML(r.puzzle), gridToHTML(r.solution))
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprint(file, "</body>\n</html>\n")
	return err
}

// gridToHTML converts a grid to an HTML table representation.
func gridToHTML(g *grid.Grid) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"hamilton-grid\"><table>")

	for y := 0; y < g.Height(); y++ {
		sb.WriteString("<tr>")
		for x := 0; x < g.Width(); x++ {
			if n := g.At(x, y); n == grid.EmptyCell {
				sb.WriteString("<td class=\"empty\">&middot;</td>")
			} else {
				sb.WriteString(fmt.Sprintf("<td>%d</td>", n))
			}
		}
		sb.WriteString("</tr>")
	}

	sb.WriteString("</table></div>")
	return sb.String()
}
