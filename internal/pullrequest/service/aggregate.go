package service

import (
	"github.com/ilam072/pr-stats/internal/types/domain"
)

// CountOpenAuthors counts pull requests per author login. Pull requests
// without an author are skipped.
func CountOpenAuthors(prs []domain.PullRequest) map[string]uint32 {
	counts := make(map[string]uint32)
	for _, pr := range prs {
		if pr.Author == nil {
			continue
		}
		counts[*pr.Author]++
	}
	return counts
}

func AuthorCounts(counts map[string]uint32) []domain.AuthorOpenCount {
	authors := make([]domain.AuthorOpenCount, 0, len(counts))
	for name, open := range counts {
		authors = append(authors, domain.AuthorOpenCount{Name: name, OpenCount: open})
	}
	return authors
}

// CollectLifetimes returns one entry per pull request that has both a creation
// and a close time, measured in whole hours truncated toward zero. Pull
// requests missing either time are skipped, but one with both times and no
// author is an error.
func CollectLifetimes(prs []domain.PullRequest) ([]domain.PullRequestDuration, error) {
	lifetimes := make([]domain.PullRequestDuration, 0, len(prs))
	for _, pr := range prs {
		if pr.CreatedAt == nil || pr.ClosedAt == nil {
			continue
		}
		if pr.Author == nil {
			return nil, &domain.MissingFieldError{Number: pr.Number, Field: "author"}
		}

		lifetimes = append(lifetimes, domain.PullRequestDuration{
			Name:          *pr.Author,
			DurationHours: int64(pr.ClosedAt.Sub(*pr.CreatedAt).Hours()),
		})
	}
	return lifetimes, nil
}
