package sources

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"threatscout/internal/config"
	"threatscout/internal/domain"
)

// FeodoTracker parses the Abuse.ch Feodo Tracker botnet C2 IP blocklist CSV.
//
// Row layout: first_seen_utc, dst_ip, dst_port, c2_status, last_online,
// malware. Only the dst_ip column is extracted. The feed ships an uncommented
// header row, which the strict IP guard drops.
type FeodoTracker struct {
	url       string
	userAgent string
	client    *http.Client
}

func NewFeodoTracker(cfg config.Config) *FeodoTracker {
	return &FeodoTracker{
		url:       cfg.Feeds.FeodoTracker.URL,
		userAgent: cfg.HTTP.UserAgent,
		client:    newHTTPClient(cfg.Timeout()),
	}
}

func (s *FeodoTracker) Name() string {
	return "FeodoTracker"
}

func (s *FeodoTracker) Fetch(ctx context.Context) []domain.IoC {
	log.Info("Fetching Feodo Tracker feed", "url", s.url)

	rows, err := fetchCSV(ctx, s.client, s.url, s.userAgent)
	if err != nil {
		log.Error("Feodo Tracker feed unavailable", "error", err)
		return nil
	}

	var records []domain.IoC
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}

		value := strings.TrimSpace(row[1])
		if value == "" {
			continue
		}

		if inferred, err := domain.InferType(value); err != nil || inferred != domain.TypeIP {
			log.Debug("Skipping non-IP FeodoTracker entry", "value", value)
			continue
		}

		record, err := domain.Normalize(value, s.Name(), domain.NormalizeOptions{
			Type:      domain.TypeIP,
			RiskLevel: domain.RiskCritical,
		})
		if err != nil {
			log.Debug("Skipping invalid FeodoTracker entry", "error", err)
			continue
		}
		records = append(records, record)
	}

	log.Info("FeodoTracker feed parsed", "records", len(records))
	return records
}
