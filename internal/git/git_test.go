// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_ValidRepo(t *testing.T) {
	dir := initTestRepo(t)

	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)
	assert.NotNil(t, repo)
}

func TestOpen_Subdirectory(t *testing.T) {
	dir := initTestRepo(t)
	sub := filepath.Join(dir, "internal", "scripts")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	repo, err := Open(Config{WorkDir: sub})
	require.NoError(t, err)

	branch, err := repo.Branch()
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestOpen_NotARepo(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(Config{WorkDir: dir})
	assert.ErrorIs(t, err, ErrNoGit)
}

func TestRemoteURL(t *testing.T) {
	dir := initTestRepo(t)
	addRemote(t, dir, "origin", "git@github.com:acme/scripts.git")
	addRemote(t, dir, "fork", "https://github.com/me/scripts.git")

	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)
	u, err := repo.RemoteURL()
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:acme/scripts.git", u)

	repo, err = Open(Config{WorkDir: dir, Remote: "fork"})
	require.NoError(t, err)
	u, err = repo.RemoteURL()
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/me/scripts.git", u)
}

func TestRemoteURL_Missing(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	_, err = repo.RemoteURL()
	assert.ErrorIs(t, err, ErrNoRemote)

	_, err = repo.LinkPrefix("internal/scripts")
	assert.ErrorIs(t, err, ErrNoRemote)
}

func TestBranch_Detached(t *testing.T) {
	dir := initTestRepo(t)
	r, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	head, err := r.Head()
	require.NoError(t, err)

	wt, err := r.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&gogit.CheckoutOptions{Hash: head.Hash()}))

	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)
	branch, err := repo.Branch()
	require.NoError(t, err)
	assert.Equal(t, head.Hash().String(), branch)
}

func TestBranch_Named(t *testing.T) {
	dir := initTestRepo(t)
	r, err := gogit.PlainOpen(dir)
	require.NoError(t, err)
	wt, err := r.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName("release"),
		Create: true,
	}))

	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)
	branch, err := repo.Branch()
	require.NoError(t, err)
	assert.Equal(t, "release", branch)
}

func TestLinkPrefix(t *testing.T) {
	dir := initTestRepo(t)
	addRemote(t, dir, "origin", "git@github.com:acme/scripts.git")

	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	prefix, err := repo.LinkPrefix("/internal/scripts/")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/acme/scripts/blob/master/internal/scripts/", prefix)
}

func TestIsDirty(t *testing.T) {
	dir := initTestRepo(t)
	repo, err := Open(Config{WorkDir: dir})
	require.NoError(t, err)

	dirty, err := repo.IsDirty()
	require.NoError(t, err)
	assert.False(t, dirty)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.go"), []byte("package main\n"), 0o644))

	dirty, err = repo.IsDirty()
	require.NoError(t, err)
	assert.True(t, dirty)
}

// initTestRepo creates a temporary git repo with an initial commit.
func initTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	r, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := r.Worktree()
	require.NoError(t, err)

	mainGo := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(mainGo, []byte("package main\n\nfunc main() {}\n"), 0o644))

	_, err = wt.Add("main.go")
	require.NoError(t, err)

	_, err = wt.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@test.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func addRemote(t *testing.T, dir, name, url string) {
	t.Helper()

	r, err := gogit.PlainOpen(dir)
	require.NoError(t, err)

	_, err = r.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
	require.NoError(t, err)
}
