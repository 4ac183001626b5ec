package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"docuai/internal/analysis"
	"docuai/internal/config"
	"docuai/internal/language"
	"docuai/internal/orchestrator"
	"docuai/internal/patch"
	"docuai/internal/report"
	"docuai/internal/synthesis"
	"docuai/internal/vcs"
)

var (
	rootCmd = &cobra.Command{
		Use:   "docuai",
		Short: "AI-powered code documentation generator",
	}
	configPath string
	dryRun     bool
	createPR   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")

	documentCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Analyze and synthesize without writing files")
	documentCmd.Flags().BoolVar(&createPR, "pr", false, "Commit the changes on a branch and print a PR URL")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(documentCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [directory]",
	Short: "List undocumented functions and classes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		dir := cfg.Project.Root
		if len(args) > 0 {
			dir = args[0]
		}

		analyzer := newAnalyzer(cfg)
		results, err := analyzer.AnalyzeDirectory(cmd.Context(), dir)
		if err != nil {
			return err
		}

		fmt.Println(report.AnalysisSummary(results))
		return nil
	},
}

var documentCmd = &cobra.Command{
	Use:   "document [directory]",
	Short: "Generate and insert documentation comments",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		dir := cfg.Project.Root
		if len(args) > 0 {
			dir = args[0]
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		synth, err := synthesis.New(ctx, synthesis.Options{
			Provider: cfg.AI.Provider,
			APIKey:   cfg.AI.APIKey,
			Model:    cfg.AI.Model,
		})
		if err != nil {
			return err
		}

		var prClient orchestrator.VCS
		if createPR {
			client, err := vcs.Open(vcs.Config{
				WorkDir:    dir,
				BaseBranch: cfg.GitHub.BaseBranch,
				Push:       cfg.GitHub.Push,
				TokenEnv:   cfg.GitHub.TokenEnv,
			})
			if err != nil {
				log.Printf("docuai: VCS integration unavailable: %v", err)
			} else {
				prClient = client
			}
		}

		orch := orchestrator.New(
			newAnalyzer(cfg),
			synth,
			patch.New(patch.Options{NormalizeClassIndent: cfg.Patch.NormalizeClassIndent}),
			prClient,
		)

		run, err := orch.Run(ctx, dir, orchestrator.Options{DryRun: dryRun, CreatePR: createPR})
		if err != nil {
			return err
		}

		fmt.Println(run.Summary)
		if !dryRun {
			fmt.Printf("Patched %d symbols across %d files\n", run.PatchedCount, len(run.ModifiedFiles))
			for _, rec := range run.Unpatched {
				fmt.Printf("Unpatched: %s %s (%s:%d)\n", rec.Kind, rec.Name, rec.File, rec.Line)
			}
		}
		if run.PRURL != "" {
			fmt.Printf("Open a pull request: %s\n", run.PRURL)
		}
		return nil
	},
}

func newAnalyzer(cfg *config.Config) *analysis.Analyzer {
	var langs []language.Language
	for _, l := range cfg.CodeAnalysis.SupportedLanguages {
		langs = append(langs, language.Language(l))
	}
	return analysis.NewAnalyzer(analysis.Options{
		IgnorePatterns: cfg.CodeAnalysis.IgnorePatterns,
		Languages:      langs,
		RegexOnly:      cfg.CodeAnalysis.RegexOnly,
	})
}
