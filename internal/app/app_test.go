package app

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v68/github"
	"github.com/ilam072/pr-stats/internal/pullrequest/presenter"
	prrepo "github.com/ilam072/pr-stats/internal/pullrequest/repo"
	prservice "github.com/ilam072/pr-stats/internal/pullrequest/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pull struct {
	Number    int        `json:"number"`
	State     string     `json:"state"`
	User      *user      `json:"user,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

type user struct {
	Login string `json:"login"`
}

func openPull(number int, login string) pull {
	return pull{Number: number, State: "open", User: &user{Login: login}}
}

func closedPull(number int, login string, hours int) pull {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	closed := created.Add(time.Duration(hours) * time.Hour)
	return pull{Number: number, State: "closed", User: &user{Login: login}, CreatedAt: &created, ClosedAt: &closed}
}

// setupGitHub serves paged pull request lists keyed by the state query
// parameter. A state with no pages answers 500.
func setupGitHub(t *testing.T, pages map[string][][]pull) *github.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	var srv *httptest.Server
	engine.GET("/repos/llvm/llvm-project/pulls", func(c *gin.Context) {
		statePages, ok := pages[c.Query("state")]
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
			return
		}
		assert.Equal(t, "main", c.Query("base"))
		assert.Equal(t, "100", c.Query("per_page"))

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 || page > len(statePages) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
			return
		}
		if page < len(statePages) {
			c.Header("Link", fmt.Sprintf(`<%s/repos/llvm/llvm-project/pulls?state=%s&base=main&per_page=100&page=%d>; rel="next"`,
				srv.URL, c.Query("state"), page+1))
		}
		c.JSON(http.StatusOK, statePages[page-1])
	})

	srv = httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	client := github.NewClient(nil)
	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return client
}

func newStats(client *github.Client) *prservice.PullRequest {
	return prservice.NewPullRequest(prrepo.New(client.PullRequests))
}

func rowFor(t *testing.T, out, name string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(strings.ReplaceAll(line, "|", " "))
		if len(fields) == 2 && fields[0] == name {
			return fields[1]
		}
	}
	t.Fatalf("no row for %q in:\n%s", name, out)
	return ""
}

func TestRun_EndToEnd(t *testing.T) {
	client := setupGitHub(t, map[string][][]pull{
		"open": {
			{openPull(1, "a"), openPull(2, "b"), openPull(3, "a")},
			{openPull(4, "c"), openPull(5, "a"), openPull(6, "b")},
		},
		"closed": {
			{closedPull(7, "x", 30), closedPull(8, "y", 2)},
		},
	})

	var out bytes.Buffer
	err := Run(context.Background(), newStats(client), presenter.New(&out))
	require.NoError(t, err)

	text := out.String()
	authorsAt := strings.Index(text, presenter.AuthorsCaption)
	lifetimesAt := strings.Index(text, presenter.LifetimesCaption)
	require.GreaterOrEqual(t, authorsAt, 0)
	require.Greater(t, lifetimesAt, authorsAt)

	authors := text[:lifetimesAt]
	assert.Equal(t, "3", rowFor(t, authors, "a"))
	assert.Equal(t, "2", rowFor(t, authors, "b"))
	assert.Equal(t, "1", rowFor(t, authors, "c"))
	assert.Less(t, strings.Index(authors, " a "), strings.Index(authors, " b "))
	assert.Less(t, strings.Index(authors, " b "), strings.Index(authors, " c "))

	lifetimes := text[lifetimesAt:]
	assert.Equal(t, "30", rowFor(t, lifetimes, "x"))
	assert.Equal(t, "2", rowFor(t, lifetimes, "y"))
}

func TestRun_LifetimeFailureKeepsAuthorReport(t *testing.T) {
	client := setupGitHub(t, map[string][][]pull{
		"open": {
			{openPull(1, "a")},
		},
	})

	var out bytes.Buffer
	err := Run(context.Background(), newStats(client), presenter.New(&out))

	require.Error(t, err)
	assert.Contains(t, out.String(), presenter.AuthorsCaption)
	assert.NotContains(t, out.String(), presenter.LifetimesCaption)
}
