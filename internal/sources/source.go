package sources

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"threatscout/internal/config"
	"threatscout/internal/domain"
)

// IntelSource is the contract every threat-intelligence feed implements.
//
// Fetch must contain all transport and parsing failures internally and degrade
// to an empty result; one failing feed never stops the collection loop or
// loses records already gathered from other feeds.
type IntelSource interface {
	Name() string
	Fetch(ctx context.Context) []domain.IoC
}

// All returns the enabled feeds in their registration order.
func All(cfg config.Config) []IntelSource {
	var list []IntelSource
	if cfg.Feeds.URLHaus.Enabled {
		list = append(list, NewURLHaus(cfg))
	}
	if cfg.Feeds.FeodoTracker.Enabled {
		list = append(list, NewFeodoTracker(cfg))
	}
	return list
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// fetchCSV downloads a feed and splits it into rows. Lines starting with '#'
// are feed comments and are dropped by the reader.
func fetchCSV(ctx context.Context, client *http.Client, url, userAgent string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	reader := csv.NewReader(resp.Body)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}
