package presenter

import (
	"fmt"
	"github.com/ilam072/pr-stats/internal/types/domain"
	"github.com/olekukonko/tablewriter"
	"io"
	"strconv"
)

const (
	AuthorsCaption   = "Authors and open PRs"
	LifetimesCaption = "Lifetime of PRs"
)

type Presenter struct {
	out io.Writer
}

func New(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) PrintAuthors(caption string, authors []domain.AuthorOpenCount) error {
	rows := make([][]string, len(authors))
	for i, a := range authors {
		rows[i] = []string{a.Name, strconv.FormatUint(uint64(a.OpenCount), 10)}
	}

	return p.print(caption, []string{"name", "open"}, rows)
}

func (p *Presenter) PrintLifetimes(caption string, lifetimes []domain.PullRequestDuration) error {
	rows := make([][]string, len(lifetimes))
	for i, l := range lifetimes {
		rows[i] = []string{l.Name, strconv.FormatInt(l.DurationHours, 10)}
	}

	return p.print(caption, []string{"name", "duration"}, rows)
}

func (p *Presenter) print(caption string, header []string, rows [][]string) error {
	if _, err := fmt.Fprintln(p.out, caption); err != nil {
		return err
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()

	return nil
}
