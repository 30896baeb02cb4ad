// Command probgen generates synthetic logic-programming benchmark problems.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/tlipoca9/probgen/cmd/probgen/generator"
	"github.com/tlipoca9/probgen/probkit"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// builtinTools is the list of built-in problem generators.
var builtinTools = []probkit.Tool{
	generator.New(),
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var output string
	var jsonOutput bool
	var noColor bool

	ver := version
	if ver == commit {
		ver = "dev"
	}
	cmd := &cobra.Command{
		Use:   "probgen [size]",
		Short: "Generate logic-programming benchmark problems",
		Long: `probgen generates synthetic Horn-clause benchmark problems for
rule evaluators (Prolog/Datalog style systems).

A problem of size N is a chain of 2*N rules closed by the base facts
p(n0) and q(n0). The problem text is written to stdout, preceded by a
comment line stating the size used.`,
		Version: fmt.Sprintf("%s (%s) %s", ver, commit, date),
		Example: `  probgen                   # problem of default size 10 to stdout
  probgen 100               # problem of size 100
  probgen 100 -o chain.pl   # write to a file
  probgen suite             # generate all problems from probgen.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := probkit.DefaultSize
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid size %q: %w", args[0], err)
				}
				size = n
			}
			return run(cmd, size, output, jsonOutput, noColor)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("probgen %s (%s) %s\n", ver, commit, date))

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the problem to a file instead of stdout")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output run statistics in JSON format (requires --output)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(suiteCmd())

	return cmd
}

func run(cmd *cobra.Command, size int, output string, jsonOutput, noColor bool) error {
	if jsonOutput && output == "" {
		return fmt.Errorf("--json requires --output: stdout carries the problem text")
	}

	log := probkit.NewLoggerWithWriter(cmd.ErrOrStderr()).SetNoColor(noColor)

	em := probkit.NewEmitter()
	tool := builtinTools[0]

	p := em.NewProblem(output)
	p.Comment("generate problem of size %d", size)
	if err := tool.Generate(p, size); err != nil {
		return fmt.Errorf("%s: %w", tool.Name(), err)
	}

	if output == "" {
		if _, err := p.WriteTo(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}

	if err := em.Write(); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	// Name the problem after the output file, as suite entries are
	// named after their config entry.
	name := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	entry := probkit.ManifestEntry{
		Name:  name,
		Tool:  tool.Name(),
		Size:  size,
		File:  output,
		Lines: p.Lines(),
	}

	if jsonOutput {
		result := &probkit.RunResult{Success: true}
		result.AddProblem(entry)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	log.Done("Generated problem of size %v", size)
	log.Item("%v (%v lines)", output, p.Lines())
	return nil
}
