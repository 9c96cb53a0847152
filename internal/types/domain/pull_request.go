package domain

import (
	"time"
)

type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

const (
	Owner      = "llvm"
	Repo       = "llvm-project"
	BaseBranch = "main"
	PageSize   = 100
)

type PullRequest struct {
	Number    int
	Author    *string
	State     State
	CreatedAt *time.Time
	ClosedAt  *time.Time
}

// ListFilter selects which pull requests a walk returns.
type ListFilter struct {
	Owner   string
	Repo    string
	State   State
	Base    string
	PerPage int
}

var (
	OpenOnMain = ListFilter{
		Owner:   Owner,
		Repo:    Repo,
		State:   StateOpen,
		Base:    BaseBranch,
		PerPage: PageSize,
	}
	ClosedOnMain = ListFilter{
		Owner:   Owner,
		Repo:    Repo,
		State:   StateClosed,
		Base:    BaseBranch,
		PerPage: PageSize,
	}
)

type AuthorOpenCount struct {
	Name      string
	OpenCount uint32
}

func (a AuthorOpenCount) Metric() int64 {
	return int64(a.OpenCount)
}

type PullRequestDuration struct {
	Name          string
	DurationHours int64
}

func (d PullRequestDuration) Metric() int64 {
	return d.DurationHours
}
