// Package orchestrator sequences the documentation workflow: analyze a
// directory, synthesize a comment per undocumented symbol, patch the
// files (or summarize in dry-run mode), and hand the modified files to
// the VCS collaborator. Everything runs sequentially; the synthesis
// provider and VCS are the only blocking collaborators and both are
// isolated here.
package orchestrator

import (
	"context"
	"log"
	"sort"

	"docuai/internal/analysis"
	"docuai/internal/patch"
	"docuai/internal/report"
	"docuai/internal/synthesis"
)

// CommentMap maps file path → symbol name → synthesized comment.
type CommentMap map[string]map[string]string

// VCS is the external pull-request collaborator. An empty URL means the
// handoff did not happen; it is never an error.
type VCS interface {
	CreateDocumentationChange(filesModified []string, symbolCount int) string
}

// Options selects the run mode.
type Options struct {
	DryRun   bool // compute the summary only, never write
	CreatePR bool // hand modified files to the VCS collaborator
}

// RunResult carries everything a caller may want to render.
type RunResult struct {
	Results       analysis.Result
	Comments      CommentMap
	ModifiedFiles []string
	PatchedCount  int
	Unpatched     []analysis.SymbolRecord
	Summary       string
	PRURL         string
}

// Orchestrator wires the pipeline components together.
type Orchestrator struct {
	analyzer *analysis.Analyzer
	synth    synthesis.Synthesizer
	patcher  *patch.Applicator
	vcs      VCS // nil when VCS integration is unavailable
}

func New(analyzer *analysis.Analyzer, synth synthesis.Synthesizer, patcher *patch.Applicator, vcs VCS) *Orchestrator {
	return &Orchestrator{analyzer: analyzer, synth: synth, patcher: patcher, vcs: vcs}
}

// Run executes the workflow on dir. Per-file and per-symbol failures
// are logged and skipped; partial results are always returned.
func (o *Orchestrator) Run(ctx context.Context, dir string, opts Options) (*RunResult, error) {
	results, err := o.analyzer.AnalyzeDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}

	run := &RunResult{Results: results, Comments: CommentMap{}}
	if len(results) == 0 {
		run.Summary = "No undocumented functions or classes found."
		return run, nil
	}

	paths := make([]string, 0, len(results))
	for path := range results {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		fileComments := map[string]string{}
		for _, rec := range results[path] {
			comment, err := o.synth.Synthesize(ctx, rec, rec.Language)
			if err != nil {
				log.Printf("docuai: skipping %s in %s: %v", rec.Name, path, err)
				continue
			}
			fileComments[rec.Name] = comment
		}
		if len(fileComments) > 0 {
			run.Comments[path] = fileComments
		}
	}

	if opts.DryRun {
		run.Summary = report.DryRunSummary(results, run.Comments)
		return run, nil
	}

	for _, path := range paths {
		fileComments, ok := run.Comments[path]
		if !ok {
			continue
		}
		fileResult, err := o.patcher.ApplyFile(path, results[path], fileComments)
		if err != nil {
			log.Printf("docuai: error patching %s: %v", path, err)
		}
		run.Unpatched = append(run.Unpatched, fileResult.Failed...)
		if len(fileResult.Applied) > 0 {
			run.ModifiedFiles = append(run.ModifiedFiles, path)
			run.PatchedCount += len(fileResult.Applied)
		}
	}

	if opts.CreatePR && o.vcs != nil && len(run.ModifiedFiles) > 0 {
		run.PRURL = o.vcs.CreateDocumentationChange(run.ModifiedFiles, run.PatchedCount)
	}

	run.Summary = report.AnalysisSummary(results)
	return run, nil
}
