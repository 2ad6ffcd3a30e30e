package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/LayoffWatch/LW-Pipeline/internal/config"
	"github.com/LayoffWatch/LW-Pipeline/internal/logging"
	"github.com/LayoffWatch/LW-Pipeline/internal/notify"
	"github.com/LayoffWatch/LW-Pipeline/internal/store"
)

// notify diffs the published dataset against the previous cycle's snapshot,
// posts the largest new notices, and replaces the snapshot. Webhook failures
// are logged and swallowed; the snapshot still advances so nothing is
// alerted twice.
func main() {
	var (
		cfgPath = flag.String("config", "sources.yaml", "path to sources config")
		dryRun  = flag.Bool("dry-run", false, "print messages without posting or saving the snapshot")
	)
	flag.Parse()

	_ = godotenv.Load(".env.local")
	log := logging.New()
	defer log.Sync()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalw("load config", "error", err)
	}

	current := store.Load(filepath.Join(cfg.SiteDir, "current_year.csv"))
	if len(current) == 0 {
		log.Infow("no published dataset, nothing to notify")
		return
	}

	snapshotPath := filepath.Join(cfg.SiteDir, "history_snapshot.json")
	previous := store.LoadSnapshot(snapshotPath)

	fresh := notify.Diff(current, previous)
	picked := notify.SelectTop(fresh, cfg.Notify.TopK)

	hook := notify.NewWebhook(cfg.WebhookURL)
	for i, n := range picked {
		msg := notify.FormatMessage(n)
		fmt.Println(msg)
		if *dryRun {
			continue
		}
		if err := hook.Post(msg); err != nil {
			log.Warnw("webhook post failed", "company", n.Company, "error", err)
		}
		if i < len(picked)-1 {
			time.Sleep(hook.Pause)
		}
	}

	if *dryRun {
		return
	}
	if err := store.SaveSnapshot(snapshotPath, notify.Identities(current)); err != nil {
		log.Fatalw("save snapshot", "error", err)
	}
	log.Infow("notification cycle complete",
		"new", len(fresh),
		"posted", len(picked),
		"snapshot_size", len(current))
}
