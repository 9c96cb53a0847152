package main

import (
	"context"
	"github.com/google/go-github/v68/github"
	"github.com/google/uuid"
	"github.com/ilam072/pr-stats/internal/app"
	"github.com/ilam072/pr-stats/internal/config"
	"github.com/ilam072/pr-stats/internal/pullrequest/presenter"
	prrepo "github.com/ilam072/pr-stats/internal/pullrequest/repo"
	prservice "github.com/ilam072/pr-stats/internal/pullrequest/service"
	"github.com/ilam072/pr-stats/pkg/logger"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	// Initialize config
	cfg := config.MustLoad()

	// Initialize logger
	if err := logger.Setup(cfg.Log.Level); err != nil {
		log.Logger.Fatal().Err(err).Msg("failed to set up logger")
	}
	log.Logger = log.Logger.With().Str("run_id", uuid.NewString()).Logger()

	// Initialize GitHub client, anonymous unless a token is configured
	httpClient := http.DefaultClient
	if cfg.GitHub.Token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHub.Token}))
	}
	client := github.NewClient(httpClient)

	// Initialize pull request repository, service and presenter
	prRepo := prrepo.New(client.PullRequests)
	pullRequest := prservice.NewPullRequest(prRepo)
	out := presenter.New(os.Stdout)

	if err := app.Run(ctx, pullRequest, out); err != nil {
		log.Logger.Fatal().Err(err).Msg("failed to build pull request reports")
	}
}
