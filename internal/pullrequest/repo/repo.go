package repo

import (
	"context"
	"github.com/google/go-github/v68/github"
	"github.com/ilam072/pr-stats/internal/types/domain"
	"github.com/ilam072/pr-stats/pkg/errutils"
	"github.com/rs/zerolog/log"
	"time"
)

// PullRequestsLister is satisfied by *github.PullRequestsService.
type PullRequestsLister interface {
	List(ctx context.Context, owner string, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
}

type PullRequestsRepo struct {
	api PullRequestsLister
}

func New(api PullRequestsLister) *PullRequestsRepo {
	return &PullRequestsRepo{api: api}
}

// WalkPullRequests calls fn once per page in the order the API returns them,
// following the next-page cursor until the API reports none. An error from fn
// stops the walk and is returned as is.
func (r *PullRequestsRepo) WalkPullRequests(ctx context.Context, filter domain.ListFilter, fn func(page []domain.PullRequest) error) error {
	const op = "repo.pr.Walk"

	opts := &github.PullRequestListOptions{
		State: string(filter.State),
		Base:  filter.Base,
		ListOptions: github.ListOptions{
			PerPage: filter.PerPage,
		},
	}

	for {
		prs, resp, err := r.api.List(ctx, filter.Owner, filter.Repo, opts)
		if err != nil {
			return errutils.Wrap(op, err)
		}

		page := make([]domain.PullRequest, len(prs))
		for i, pr := range prs {
			page[i] = toDomain(pr)
		}

		log.Logger.Debug().
			Str("state", string(filter.State)).
			Int("page", max(opts.Page, 1)).
			Int("records", len(page)).
			Msg("fetched pull request page")

		if err := fn(page); err != nil {
			return err
		}

		if resp == nil || resp.NextPage == 0 {
			return nil
		}
		opts.Page = resp.NextPage
	}
}

func (r *PullRequestsRepo) ListPullRequests(ctx context.Context, filter domain.ListFilter) ([]domain.PullRequest, error) {
	const op = "repo.pr.List"

	var prs []domain.PullRequest
	err := r.WalkPullRequests(ctx, filter, func(page []domain.PullRequest) error {
		prs = append(prs, page...)
		return nil
	})
	if err != nil {
		return nil, errutils.Wrap(op, err)
	}

	return prs, nil
}

func toDomain(pr *github.PullRequest) domain.PullRequest {
	out := domain.PullRequest{
		Number:    pr.GetNumber(),
		State:     domain.State(pr.GetState()),
		CreatedAt: timestamp(pr.CreatedAt),
		ClosedAt:  timestamp(pr.ClosedAt),
	}

	if user := pr.GetUser(); user != nil && user.Login != nil {
		login := user.GetLogin()
		out.Author = &login
	}

	return out
}

func timestamp(ts *github.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.Time
	return &t
}
