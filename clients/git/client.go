package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
)

// Client acquires the source to build; clones run at full history depth so
// revision based tagging has the complete revision list available
//go:generate mockgen -package=git -destination ./mock.go -source=client.go
type Client interface {
	CloneRevision(ctx context.Context, repoURL, branch, revision, dir string) (err error)
	GetHeadRevision(ctx context.Context, dir string) (revision string, err error)
}

// NewClient returns a new git.Client
func NewClient(username, password string) (Client, error) {
	return &client{
		username: username,
		password: password,
	}, nil
}

type client struct {
	username string
	password string
}

func (c *client) CloneRevision(ctx context.Context, repoURL, branch, revision, dir string) (err error) {

	span, ctx := opentracing.StartSpanFromContext(ctx, "CloneRevision")
	defer span.Finish()
	span.SetTag("repo-url", repoURL)

	log.Info().Msgf("Cloning %v branch %v at full depth...", repoURL, branch)

	cloneOptions := gogit.CloneOptions{
		URL:           repoURL,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
		SingleBranch:  false,
		// Depth 0 clones the full history, required for revision based tagging
		Depth: 0,
	}
	if c.username != "" || c.password != "" {
		cloneOptions.Auth = &http.BasicAuth{
			Username: c.username,
			Password: c.password,
		}
	}

	repository, err := gogit.PlainCloneContext(ctx, dir, false, &cloneOptions)
	if err != nil {
		return fmt.Errorf("failed cloning %v: %w", repoURL, err)
	}

	if revision == "" {
		return nil
	}

	log.Info().Msgf("Checking out revision %v...", revision)

	worktree, err := repository.Worktree()
	if err != nil {
		return err
	}

	err = worktree.Checkout(&gogit.CheckoutOptions{
		Hash:  plumbing.NewHash(revision),
		Force: true,
	})
	if err != nil {
		return fmt.Errorf("failed checking out revision %v: %w", revision, err)
	}

	return nil
}

func (c *client) GetHeadRevision(ctx context.Context, dir string) (revision string, err error) {

	span, _ := opentracing.StartSpanFromContext(ctx, "GetHeadRevision")
	defer span.Finish()

	repository, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", err
	}

	head, err := repository.Head()
	if err != nil {
		return "", err
	}

	return head.Hash().String(), nil
}
