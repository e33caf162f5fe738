package gitrepo

import (
	"fmt"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GitBackend implements Backend with go-git over a plain on-disk
// repository.
type GitBackend struct {
	dir      string
	repo     *git.Repository
	worktree *git.Worktree
}

// NewGitBackend returns a backend targeting dir. Nothing touches disk
// until Init.
func NewGitBackend(dir string) *GitBackend {
	return &GitBackend{dir: dir}
}

// Dir returns the target directory.
func (g *GitBackend) Dir() string {
	return g.dir
}

// Init creates the target directory and initializes a repository in it.
// An existing repository is an error: conversion targets a fresh tree.
func (g *GitBackend) Init() error {
	if err := os.MkdirAll(g.dir, 0755); err != nil {
		return err
	}
	repo, err := git.PlainInit(g.dir, false)
	if err != nil {
		return fmt.Errorf("init %s: %w", g.dir, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return err
	}
	g.repo = repo
	g.worktree = worktree
	return nil
}

func (g *GitBackend) Stage(path string) error {
	_, err := g.worktree.Add(path)
	return err
}

func (g *GitBackend) Remove(path string) error {
	_, err := g.worktree.Remove(path)
	return err
}

func (g *GitBackend) Commit(author, email, message string, when time.Time, allowEmpty bool) error {
	_, err := g.worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author,
			Email: email,
			When:  when,
		},
		AllowEmptyCommits: allowEmpty,
	})
	return err
}
