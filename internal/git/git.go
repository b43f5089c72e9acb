// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package git reads the remote and branch of a local checkout so source
// links can point at the hosted copy of the files.
package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

const defaultRemote = "origin"

// ErrNoGit is returned when the working directory is not a git repository.
var ErrNoGit = errors.New("not a git repository")

// ErrNoRemote is returned when the configured remote does not exist or has
// no URL.
var ErrNoRemote = errors.New("remote not found")

// Config configures which checkout and remote to read.
type Config struct {
	WorkDir string // Any directory inside the checkout
	Remote  string // Remote name (default "origin")
}

// Repo wraps a go-git repository for the read-only queries we need.
type Repo struct {
	repo *gogit.Repository
	cfg  Config
}

// Open opens the git repository containing cfg.WorkDir. Returns ErrNoGit
// if there is none.
func Open(cfg Config) (*Repo, error) {
	if cfg.Remote == "" {
		cfg.Remote = defaultRemote
	}
	r, err := gogit.PlainOpenWithOptions(cfg.WorkDir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	return &Repo{repo: r, cfg: cfg}, nil
}

// RemoteURL returns the first URL of the configured remote.
func (r *Repo) RemoteURL() (string, error) {
	remote, err := r.repo.Remote(r.cfg.Remote)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrNoRemote, r.cfg.Remote, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s has no URL", ErrNoRemote, r.cfg.Remote)
	}
	return urls[0], nil
}

// Branch returns the short name of the checked out branch, or the commit
// hash when HEAD is detached.
func (r *Repo) Branch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	if head.Name().IsBranch() {
		return head.Name().Short(), nil
	}
	return head.Hash().String(), nil
}

// IsDirty returns true if the working tree has uncommitted changes
// (either staged or unstaged).
func (r *Repo) IsDirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("getting status: %w", err)
	}

	return !status.IsClean(), nil
}

// LinkPrefix returns the hosted blob URL of subpath at the current branch,
// ending in "/".
func (r *Repo) LinkPrefix(subpath string) (string, error) {
	remote, err := r.RemoteURL()
	if err != nil {
		return "", err
	}
	branch, err := r.Branch()
	if err != nil {
		return "", err
	}
	return BlobBaseURL(remote, branch, subpath)
}
