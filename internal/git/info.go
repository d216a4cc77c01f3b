// Package git reports the state of the repository the generator runs in.
// The version command uses it to identify exactly which checkout produced
// a set of artifacts.
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// Info describes the current state of a git checkout
type Info struct {
	// Commit is the current HEAD commit hash
	Commit string
	// Branch is the current branch name
	Branch string
	// Dirty indicates the working tree has uncommitted changes
	Dirty bool
}

// Describe inspects the repository that dir belongs to, walking upwards
// until a .git directory is found.
func Describe(dir string) (*Info, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to find a git repository that path %q belongs to: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status: %w", err)
	}

	return &Info{
		Commit: head.Hash().String(),
		Branch: head.Name().Short(),
		Dirty:  !status.IsClean(),
	}, nil
}
