// Package audit keeps a git-backed change journal of the data directory.
// Every successful mutation becomes a commit, giving the shop a browsable
// trail of what changed and when.
package audit

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/scoopctl/scoopctl/internal/domain"
)

// Journal implements domain.ChangeJournal on a git repository rooted at
// the data directory.
type Journal struct {
	repo *git.Repository
}

// Open opens the journal repository at dataDir, initializing one on
// first use.
func Open(dataDir string) (*Journal, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	repo, err := git.PlainOpen(dataDir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(dataDir, false)
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	return &Journal{repo: repo}, nil
}

// Record stages everything in the data directory and commits it with the
// given message. Best-effort: failures are logged, never returned, and a
// clean worktree records nothing.
func (j *Journal) Record(message string) {
	wt, err := j.repo.Worktree()
	if err != nil {
		slog.Warn("journal worktree", "err", err)
		return
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		slog.Warn("journal add", "err", err)
		return
	}

	_, err = wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "scoopctl",
			Email: "scoopctl@localhost",
			When:  time.Now(),
		},
	})
	if err != nil && !errors.Is(err, git.ErrEmptyCommit) {
		slog.Warn("journal commit", "err", err)
	}
}

// Entries returns the most recent journal entries, newest first. A limit
// of 0 means all. A journal with no commits yet yields an empty list.
func (j *Journal) Entries(limit int) ([]domain.AuditEntry, error) {
	iter, err := j.repo.Log(&git.LogOptions{})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading journal: %w", err)
	}
	defer iter.Close()

	var entries []domain.AuditEntry
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(entries) >= limit {
			return storer.ErrStop
		}
		entries = append(entries, domain.AuditEntry{
			Hash:    c.Hash.String(),
			Message: strings.TrimSpace(c.Message),
			When:    c.Author.When,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking journal: %w", err)
	}
	return entries, nil
}
