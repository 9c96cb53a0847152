package app

import (
	"context"
	"github.com/ilam072/pr-stats/internal/pullrequest/presenter"
	"github.com/ilam072/pr-stats/internal/types/domain"
	"github.com/ilam072/pr-stats/pkg/errutils"
)

type Stats interface {
	TopOpenAuthors(ctx context.Context) ([]domain.AuthorOpenCount, error)
	TopLifetimes(ctx context.Context) ([]domain.PullRequestDuration, error)
}

type Printer interface {
	PrintAuthors(caption string, authors []domain.AuthorOpenCount) error
	PrintLifetimes(caption string, lifetimes []domain.PullRequestDuration) error
}

// Run prints the open-author report and then the lifetime report. A failure
// in the second report leaves the first one printed.
func Run(ctx context.Context, stats Stats, printer Printer) error {
	const op = "app.Run"

	authors, err := stats.TopOpenAuthors(ctx)
	if err != nil {
		return errutils.Wrap(op, err)
	}
	if err := printer.PrintAuthors(presenter.AuthorsCaption, authors); err != nil {
		return errutils.Wrap(op, err)
	}

	lifetimes, err := stats.TopLifetimes(ctx)
	if err != nil {
		return errutils.Wrap(op, err)
	}
	if err := printer.PrintLifetimes(presenter.LifetimesCaption, lifetimes); err != nil {
		return errutils.Wrap(op, err)
	}

	return nil
}
