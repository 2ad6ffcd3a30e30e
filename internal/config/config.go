// Package config assembles the pipeline configuration: environment variables
// for paths and secrets, plus an optional sources.yaml for per-source URLs
// and policy knobs. An absent file means defaults.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type Config struct {
	DataDir    string
	SiteDir    string
	WebhookURL string
	Port       string

	Sources Sources
	Policy  PolicySettings
	Notify  NotifySettings
}

// Sources holds the per-state feed locations. FLListURL carries a %d
// placeholder for the report year.
type Sources struct {
	CAWorkbookURL string `yaml:"ca_workbook_url"`
	FLListURL     string `yaml:"fl_list_url"`
	TXDataPageURL string `yaml:"tx_data_page_url"`
	TXBaseURL     string `yaml:"tx_base_url"`
	NYBaseURL     string `yaml:"ny_base_url"`
}

// PolicySettings selects the retention variant: window_days > 0 switches the
// aggregator from current-calendar-year to a trailing window.
type PolicySettings struct {
	WindowDays      int      `yaml:"window_days"`
	PlaceholderURLs []string `yaml:"placeholder_url_substrings"`
}

type NotifySettings struct {
	TopK int `yaml:"top_k"`
}

type fileConfig struct {
	Sources Sources        `yaml:"sources"`
	Policy  PolicySettings `yaml:"policy"`
	Notify  NotifySettings `yaml:"notify"`
}

// Load builds the configuration. Env wins for paths and secrets; the YAML
// file, when present, overrides source URLs and policy. Only a malformed
// file is an error.
func Load(path string) (Config, error) {
	cfg := Config{
		DataDir:    envOr("WARN_DATA_DIR", "data"),
		SiteDir:    envOr("WARN_SITE_DIR", "site"),
		WebhookURL: os.Getenv("DISCORD_WEBHOOK"),
		Port:       envOr("PORT", "5050"),
		Sources: Sources{
			CAWorkbookURL: "https://edd.ca.gov/siteassets/files/jobs_and_training/warn/warn_report.xlsx",
			FLListURL:     "https://reactwarn.floridajobs.org/NoticeList.aspx?year=%d",
			TXDataPageURL: "https://www.twc.texas.gov/data-reports/warn-notice-data",
			TXBaseURL:     "https://www.twc.texas.gov",
			NYBaseURL:     "https://dol.ny.gov",
		},
		Policy: PolicySettings{
			PlaceholderURLs: []string{"warn-worker-adjustment-and-retraining-notification"},
		},
		Notify: NotifySettings{TopK: 3},
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	file := fileConfig{Sources: cfg.Sources, Policy: cfg.Policy, Notify: cfg.Notify}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Sources = file.Sources
	cfg.Policy = file.Policy
	cfg.Notify = file.Notify
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
