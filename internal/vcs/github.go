// Package vcs hands patched files off to git: branch, commit, optional
// push, and a GitHub compare URL for opening the pull request. Failures
// here never propagate into the analysis/patch pipeline; absence of a
// URL is the only failure signal callers see.
package vcs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

const (
	authorName  = "docuai"
	authorEmail = "noreply@docuai"
)

// Config controls how documentation changes are committed.
type Config struct {
	WorkDir    string
	BaseBranch string // target branch of the eventual PR, default "main"
	Push       bool   // push the branch to origin after committing
	TokenEnv   string // env var holding the token used to authenticate pushes
}

// Client wraps a go-git repository for the documentation workflow.
type Client struct {
	repo *gogit.Repository
	cfg  Config
}

// Open opens the git repository at cfg.WorkDir. Returns an error when
// the directory is not a repository; callers treat that as "no VCS
// integration" rather than a fatal condition.
func Open(cfg Config) (*Client, error) {
	if cfg.BaseBranch == "" {
		cfg.BaseBranch = "main"
	}
	repo, err := gogit.PlainOpen(cfg.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	return &Client{repo: repo, cfg: cfg}, nil
}

// CreateDocumentationChange creates a branch, commits the modified
// files, optionally pushes, and returns a compare URL for opening a
// pull request. Any failure logs a diagnostic and returns "".
func (c *Client) CreateDocumentationChange(filesModified []string, symbolCount int) string {
	if len(filesModified) == 0 {
		return ""
	}

	branch := fmt.Sprintf("docuai-auto-docs-%d", time.Now().Unix())

	wt, err := c.repo.Worktree()
	if err != nil {
		log.Printf("docuai: error getting worktree: %v", err)
		return ""
	}

	// The worktree is dirty at this point: the patched files are still
	// uncommitted. Keep carries them across the branch switch.
	err = wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: true,
		Keep:   true,
	})
	if err != nil {
		log.Printf("docuai: error creating branch %s: %v", branch, err)
		return ""
	}

	root := wt.Filesystem.Root()
	for _, f := range filesModified {
		rel, err := worktreePath(root, f)
		if err != nil {
			log.Printf("docuai: error staging %s: %v", f, err)
			return ""
		}
		if _, err := wt.Add(rel); err != nil {
			log.Printf("docuai: error staging %s: %v", rel, err)
			return ""
		}
	}

	_, err = wt.Commit(commitMessage(filesModified, symbolCount), &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		log.Printf("docuai: error committing documentation changes: %v", err)
		return ""
	}

	if c.cfg.Push {
		opts := &gogit.PushOptions{}
		if c.cfg.TokenEnv != "" {
			if token := os.Getenv(c.cfg.TokenEnv); token != "" {
				opts.Auth = &githttp.BasicAuth{Username: authorName, Password: token}
			}
		}
		if err := c.repo.Push(opts); err != nil {
			log.Printf("docuai: error pushing branch %s: %v", branch, err)
			return ""
		}
	}

	return c.compareURL(branch)
}

// worktreePath converts an analyzer path, absolute or relative to the
// working directory, into the repo-root-relative slash form Add wants.
func worktreePath(root, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside the repository at %s", path, root)
	}
	return filepath.ToSlash(rel), nil
}

func commitMessage(filesModified []string, symbolCount int) string {
	return fmt.Sprintf(
		"docs: Auto-generate documentation for %d functions/classes\n\nGenerated by DocuAI\n\nFiles modified: %s",
		symbolCount, strings.Join(filesModified, ", "),
	)
}

var githubRemote = regexp.MustCompile(`github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`)

// compareURL derives the PR-opening URL from the origin remote. Returns
// "" when there is no origin or it does not point at GitHub.
func (c *Client) compareURL(branch string) string {
	remote, err := c.repo.Remote("origin")
	if err != nil || len(remote.Config().URLs) == 0 {
		log.Printf("docuai: no origin remote, cannot build PR URL")
		return ""
	}
	m := githubRemote.FindStringSubmatch(remote.Config().URLs[0])
	if m == nil {
		log.Printf("docuai: origin remote is not a GitHub URL")
		return ""
	}
	return fmt.Sprintf("https://github.com/%s/%s/compare/%s...%s?expand=1", m[1], m[2], c.cfg.BaseBranch, branch)
}
