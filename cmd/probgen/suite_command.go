package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tlipoca9/probgen/probkit"
)

// defaultOutputDir is used when probgen.toml does not set output_dir.
const defaultOutputDir = "problems"

func suiteCmd() *cobra.Command {
	var dryRun bool
	var jsonOutput bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Generate a suite of problems from probgen.toml",
		Long: `suite generates every problem configured in probgen.toml and writes a
manifest.yaml describing the generated files.

probgen looks for probgen.toml in the current directory (and parent
directories). Example probgen.toml:

  default_size = 10
  output_dir = "problems"

  [[problems]]
  name = "induction-small"
  tool = "induction"
  size = 8

  [[problems]]
  name = "induction-large"
  size = 1000`,
		Example: `  probgen suite                 # generate all configured problems
  probgen suite --dry-run       # preview without writing files
  probgen suite --dry-run --json  # JSON output for tooling`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd, dryRun, jsonOutput, noColor)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview without writing files")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for tooling integration)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func runSuite(cmd *cobra.Command, dryRun, jsonOutput, noColor bool) error {
	// Use silent logger for JSON output to avoid polluting stdout
	var log *probkit.Logger
	if jsonOutput {
		log = probkit.NewLoggerWithWriter(io.Discard)
	} else {
		log = probkit.NewLoggerWithWriter(cmd.ErrOrStderr()).SetNoColor(noColor)
	}

	configSearchDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := probkit.LoadConfig(configSearchDir)
	if err != nil {
		return fmt.Errorf("load %s: %w", probkit.ConfigFilename, err)
	}
	if len(cfg.Problems) == 0 {
		log.Warn("No problems configured in %s", probkit.ConfigFilename)
		return nil
	}

	result, em, manifest, err := generateSuite(cfg, dryRun, log)
	if err != nil {
		return err
	}

	if !dryRun {
		if err := em.Write(); err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if err := probkit.WriteManifest(outputDir(cfg), manifest); err != nil {
			return err
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if dryRun {
		log.Done("Dry-run successful")
		log.Item("Problems: %v", result.Stats.ProblemsGenerated)
		for path, content := range em.DryRun() {
			log.Item("%v (%v bytes)", path, len(content))
		}
		return nil
	}

	log.Done("Generated %v problem(s)", result.Stats.ProblemsGenerated)
	for _, e := range result.Problems {
		log.Item("%v (size %v, %v lines)", probkit.OutputPath(outputDir(cfg), e.File), e.Size, e.Lines)
	}
	return nil
}

// generateSuite emits every configured problem into a fresh Emitter and
// builds the matching manifest and run result.
func generateSuite(cfg *probkit.Config, dryRun bool, log *probkit.Logger) (*probkit.RunResult, *probkit.Emitter, *probkit.Manifest, error) {
	registry := probkit.NewRegistry(builtinTools...)
	em := probkit.NewEmitter(probkit.Options{Dir: outputDir(cfg)})
	result := &probkit.RunResult{Success: true, DryRun: dryRun}
	manifest := &probkit.Manifest{}

	for _, pc := range cfg.Problems {
		if pc.Name == "" {
			return nil, nil, nil, fmt.Errorf("problem entry without a name in %s", probkit.ConfigFilename)
		}
		toolName := pc.Tool
		if toolName == "" {
			toolName = builtinTools[0].Name()
		}
		tool := registry.Lookup(toolName)
		if tool == nil {
			return nil, nil, nil, fmt.Errorf("unknown tool %q for problem %q", toolName, pc.Name)
		}

		size := cfg.Size(pc)
		log.Emit("%v: %v problem of size %v", pc.Name, toolName, size)
		p := em.NewProblem(pc.Name + ".pl")
		p.Comment("generate problem of size %d", size)
		if err := tool.Generate(p, size); err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %s: %w", toolName, pc.Name, err)
		}

		entry := probkit.ManifestEntry{
			Name:  pc.Name,
			Tool:  toolName,
			Size:  size,
			File:  p.Filename(),
			Lines: p.Lines(),
		}
		result.AddProblem(entry)
		manifest.Problems = append(manifest.Problems, entry)
	}

	return result, em, manifest, nil
}

func outputDir(cfg *probkit.Config) string {
	if cfg.OutputDir != "" {
		return cfg.OutputDir
	}
	return defaultOutputDir
}
