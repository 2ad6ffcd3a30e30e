package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/LayoffWatch/LW-Pipeline/internal/collect"
	"github.com/LayoffWatch/LW-Pipeline/internal/config"
	"github.com/LayoffWatch/LW-Pipeline/internal/logging"
	"github.com/LayoffWatch/LW-Pipeline/internal/resolver"
	"github.com/LayoffWatch/LW-Pipeline/internal/store"
	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// ingest runs one source to completion: collect, normalize, merge into that
// source's store. Runs for the same store must be serialized by the
// scheduler; the merge is a whole-file read-modify-write.
func main() {
	var (
		state   = flag.String("state", "", "source state to ingest (ca|fl|ny|tx)")
		cfgPath = flag.String("config", "sources.yaml", "path to sources config")
	)
	flag.Parse()

	if *state == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load(".env.local")
	log := logging.New()
	defer log.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalw("load config", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	year := time.Now().UTC().Year()
	storePath := filepath.Join(cfg.DataDir, strings.ToLower(*state), strconv.Itoa(year)+".csv")
	existing := store.Load(storePath)

	seen := make(map[string]bool, len(existing))
	for _, n := range existing {
		seen[strings.TrimSpace(n.SourceURL)] = true
	}

	collector, err := collect.New(*state, collect.NewFetcher(), cfg.Sources)
	if err != nil {
		log.Fatalw("unknown source", "state", *state, "error", err)
	}

	env := collect.Env{
		Aliases:  store.LoadAliases(filepath.Join(cfg.SiteDir, "mappings.json")),
		SeenURLs: seen,
		Year:     year,
		Log:      log,
	}

	batch, err := collector.Collect(ctx, env)
	if err != nil {
		if errors.Is(err, resolver.ErrMissingColumns) {
			// the source changed its schema; nothing safe to ingest
			log.Fatalw("batch aborted", "state", collector.State(), "error", err)
		}
		log.Errorw("collection failed, zero rows ingested", "state", collector.State(), "error", err)
		return
	}

	// empty-company rows are parse noise, dropped before they reach the store
	kept := make([]warn.Notice, 0, len(batch))
	for _, n := range batch {
		if strings.TrimSpace(n.Company) == "" {
			continue
		}
		kept = append(kept, n)
	}
	if len(kept) == 0 {
		log.Infow("no rows collected", "state", collector.State())
		return
	}

	merged, inserted := store.UpsertBatch(existing, kept)
	if err := store.Save(storePath, merged); err != nil {
		log.Fatalw("save store", "path", storePath, "error", err)
	}
	log.Infow("ingestion complete",
		"state", collector.State(),
		"collected", len(kept),
		"inserted", inserted,
		"store", storePath)
}
