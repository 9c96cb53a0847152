package service

import (
	"context"
	"github.com/ilam072/pr-stats/internal/ranking"
	"github.com/ilam072/pr-stats/internal/types/domain"
	"github.com/ilam072/pr-stats/pkg/errutils"
	"github.com/rs/zerolog/log"
)

type PullRequestRepo interface {
	ListPullRequests(ctx context.Context, filter domain.ListFilter) ([]domain.PullRequest, error)
}

type PullRequest struct {
	prRepo PullRequestRepo
}

func NewPullRequest(prRepo PullRequestRepo) *PullRequest {
	return &PullRequest{prRepo: prRepo}
}

func (p *PullRequest) TopOpenAuthors(ctx context.Context) ([]domain.AuthorOpenCount, error) {
	const op = "service.pr.TopOpenAuthors"

	prs, err := p.prRepo.ListPullRequests(ctx, domain.OpenOnMain)
	if err != nil {
		return nil, errutils.Wrap(op, err)
	}

	authors := AuthorCounts(CountOpenAuthors(prs))

	log.Logger.Info().
		Int("pull_requests", len(prs)).
		Int("authors", len(authors)).
		Msg("counted open pull requests per author")

	return ranking.Top(authors, ranking.Size), nil
}

func (p *PullRequest) TopLifetimes(ctx context.Context) ([]domain.PullRequestDuration, error) {
	const op = "service.pr.TopLifetimes"

	prs, err := p.prRepo.ListPullRequests(ctx, domain.ClosedOnMain)
	if err != nil {
		return nil, errutils.Wrap(op, err)
	}

	lifetimes, err := CollectLifetimes(prs)
	if err != nil {
		return nil, errutils.Wrap(op, err)
	}

	log.Logger.Info().
		Int("pull_requests", len(prs)).
		Int("lifetimes", len(lifetimes)).
		Msg("collected closed pull request lifetimes")

	return ranking.Top(lifetimes, ranking.Size), nil
}
