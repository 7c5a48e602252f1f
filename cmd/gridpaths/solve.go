package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type report struct {
	Puzzle string `yaml:"puzzle"`
	Input  string `yaml:"input"`
	Part1  string `yaml:"part1"`
	Part2  string `yaml:"part2"`
	Result any    `yaml:"result"`
}

func newSolveCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "solve <puzzle> <input-file>",
		Short: "Solve one puzzle input and print both answers",
		Example: `  gridpaths solve reindeer inputs/16.txt
  gridpaths solve ramrun inputs/18.txt --format yaml`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return puzzleNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text", "yaml":
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
			p, ok := lookupPuzzle(args[0])
			if !ok {
				return fmt.Errorf("unknown puzzle %q (known: %s)", args[0], strings.Join(puzzleNames(), ", "))
			}

			fd, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("os.Open(%q): %w", args[1], err)
			}
			defer func() { _ = fd.Close() }()

			ans, err := p.solve(a, fd)
			if err != nil {
				return fmt.Errorf("%s: %w", p.name, err)
			}

			out := cmd.OutOrStdout()
			if format == "text" {
				_, err = fmt.Fprintf(out, "%s\n%s\n", ans.part1, ans.part2)
				return err
			}
			outBytes, err := yaml.Marshal(report{
				Puzzle: p.name,
				Input:  args[1],
				Part1:  ans.part1,
				Part2:  ans.part2,
				Result: ans.result,
			})
			if err != nil {
				return fmt.Errorf("yaml.Marshal: %w", err)
			}
			_, err = out.Write(outBytes)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, yaml)")
	return cmd
}
