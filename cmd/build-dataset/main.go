package main

import (
	"flag"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/LayoffWatch/LW-Pipeline/internal/aggregate"
	"github.com/LayoffWatch/LW-Pipeline/internal/config"
	"github.com/LayoffWatch/LW-Pipeline/internal/logging"
	"github.com/LayoffWatch/LW-Pipeline/internal/store"
	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// build-dataset rebuilds the public dataset from every per-source store.
// The output is fully rewritten each run; the stores stay untouched.
func main() {
	cfgPath := flag.String("config", "sources.yaml", "path to sources config")
	flag.Parse()

	_ = godotenv.Load(".env.local")
	log := logging.New()
	defer log.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalw("load config", "error", err)
	}

	if err := store.EnsureAliases(filepath.Join(cfg.SiteDir, "mappings.json")); err != nil {
		log.Fatalw("ensure alias table", "error", err)
	}

	paths, err := filepath.Glob(filepath.Join(cfg.DataDir, "*", "*.csv"))
	if err != nil {
		log.Fatalw("scan stores", "error", err)
	}

	var tables [][]warn.Notice
	for _, p := range paths {
		t := store.Load(p)
		if len(t) == 0 {
			log.Warnw("skipping empty or unreadable store", "path", p)
			continue
		}
		tables = append(tables, t)
	}

	policy := aggregate.Policy{
		PlaceholderURLParts: cfg.Policy.PlaceholderURLs,
		WindowDays:          cfg.Policy.WindowDays,
	}
	if policy.WindowDays > 0 {
		log.Infow("retention policy: trailing window", "days", policy.WindowDays)
	} else {
		log.Infow("retention policy: current calendar year")
	}

	rows := aggregate.Build(tables, policy)

	outPath := filepath.Join(cfg.SiteDir, "current_year.csv")
	if err := store.Save(outPath, rows); err != nil {
		log.Fatalw("write dataset", "path", outPath, "error", err)
	}
	log.Infow("dataset built", "rows", len(rows), "stores", len(tables), "path", outPath)
}
