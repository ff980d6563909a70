package cli

import (
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// AutoDetectRepo resolves the GitHub owner and repository name from the
// origin remote of the git repository at path.
func AutoDetectRepo(path string) (string, string, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to open git repository")
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", "", goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	owner, repoName := ParseGitHubRemote(url)
	if owner == "" || repoName == "" {
		return "", "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	return owner, repoName, nil
}

// ParseGitHubRemote extracts owner and repository name from a git remote URL
// (e.g., git@github.com:owner/repo.git or https://github.com/owner/repo.git).
func ParseGitHubRemote(url string) (string, string) {
	if strings.HasPrefix(url, "git@github.com:") {
		// SSH format: git@github.com:owner/repo.git
		parts := strings.TrimPrefix(url, "git@github.com:")
		parts = strings.TrimSuffix(parts, ".git")
		ownerRepo := strings.Split(parts, "/")
		if len(ownerRepo) == 2 {
			return ownerRepo[0], ownerRepo[1]
		}
		return "", ""
	}

	if strings.Contains(url, "github.com/") {
		// HTTPS format: https://github.com/owner/repo.git
		parts := strings.Split(url, "github.com/")
		if len(parts) == 2 {
			parts[1] = strings.TrimSuffix(parts[1], ".git")
			ownerRepo := strings.Split(parts[1], "/")
			if len(ownerRepo) == 2 {
				return ownerRepo[0], ownerRepo[1]
			}
		}
	}

	return "", ""
}
