package sources

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"

	"threatscout/internal/config"
	"threatscout/internal/domain"
)

// URLHaus parses the Abuse.ch URLHaus recent-URLs CSV feed.
//
// Row layout: id, dateadded, url, url_status, last_online, threat, tags,
// urlhaus_link, reporter. Only the url column is extracted.
type URLHaus struct {
	url       string
	userAgent string
	client    *http.Client
}

func NewURLHaus(cfg config.Config) *URLHaus {
	return &URLHaus{
		url:       cfg.Feeds.URLHaus.URL,
		userAgent: cfg.HTTP.UserAgent,
		client:    newHTTPClient(cfg.Timeout()),
	}
}

func (s *URLHaus) Name() string {
	return "URLHaus"
}

func (s *URLHaus) Fetch(ctx context.Context) []domain.IoC {
	log.Info("Fetching URLHaus feed", "url", s.url)

	rows, err := fetchCSV(ctx, s.client, s.url, s.userAgent)
	if err != nil {
		log.Error("URLHaus feed unavailable", "error", err)
		return nil
	}

	var records []domain.IoC
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}

		value := strings.TrimSpace(row[2])
		if value == "" {
			continue
		}

		// Header rows and layout drift fail open: anything that does not
		// classify as a URL is skipped, never stored.
		if inferred, err := domain.InferType(value); err != nil || inferred != domain.TypeURL {
			log.Debug("Skipping non-URL URLHaus entry", "value", value)
			continue
		}

		record, err := domain.Normalize(value, s.Name(), domain.NormalizeOptions{
			Type:      domain.TypeURL,
			RiskLevel: domain.RiskHigh,
		})
		if err != nil {
			log.Debug("Skipping invalid URLHaus entry", "error", err)
			continue
		}
		records = append(records, record)
	}

	log.Info("URLHaus feed parsed", "records", len(records))
	return records
}
