package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initRepo creates a repository with one commit and returns its path.
func initRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# repo\n"), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("README.md")
	require.NoError(t, err)

	_, err = worktree.Commit("initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestDescribe(t *testing.T) {
	t.Run("clean repository", func(t *testing.T) {
		dir := initRepo(t)

		info, err := Describe(dir)
		require.NoError(t, err)

		assert.Len(t, info.Commit, 40)
		assert.NotEmpty(t, info.Branch)
		assert.False(t, info.Dirty)
	})

	t.Run("untracked files mark the tree dirty", func(t *testing.T) {
		dir := initRepo(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("wip"), 0o644))

		info, err := Describe(dir)
		require.NoError(t, err)
		assert.True(t, info.Dirty)
	})

	t.Run("detects repository from a subdirectory", func(t *testing.T) {
		dir := initRepo(t)
		sub := filepath.Join(dir, "src", "nested")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		info, err := Describe(sub)
		require.NoError(t, err)
		assert.Len(t, info.Commit, 40)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := Describe(t.TempDir())
		require.Error(t, err)
	})
}
