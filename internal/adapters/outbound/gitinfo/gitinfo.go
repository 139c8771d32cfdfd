package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Repo implements domain.GitInfo using go-git. The submissions root may sit
// anywhere below the repository top level.
type Repo struct{}

func New() *Repo {
	return &Repo{}
}

// CommitHash returns the HEAD commit of the repository containing path.
func (g *Repo) CommitHash(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
