package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/priyadarshn/lokal/internal/api"
	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/config"
	"github.com/priyadarshn/lokal/internal/logging"
	"github.com/priyadarshn/lokal/internal/query"
	"github.com/priyadarshn/lokal/internal/resolve"
)

// app bundles the wired pipeline shared by every command.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	client   *api.Client
	corpus   *catalog.Corpus
	pipeline *query.Pipeline
	places   *resolve.Resolver
	events   *resolve.EventResolver
}

func newApp() (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	client := api.NewClient(cfg.Remote.BaseURL, cfg.Remote.APIKey)
	corpus := catalog.DefaultCorpus()
	genericDelay := time.Duration(cfg.Search.GenericDelayMS) * time.Millisecond

	return &app{
		cfg:      cfg,
		log:      log,
		client:   client,
		corpus:   corpus,
		pipeline: query.DefaultPipeline(),
		places:   resolve.NewResolver(client, corpus, genericDelay, log),
		events:   resolve.NewEventResolver(client, corpus.Events, log),
	}, nil
}
