package lunch

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Fetcher retrieves the raw body of a menu page. Implementations own
// their timeout policy; failures are not retried.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Service composes the registry, fetcher and extractor into the one
// operation callers care about.
type Service struct {
	fetcher Fetcher
	baseURL string
	logger  *zap.Logger
}

// NewService builds a Service. An empty baseURL falls back to the
// production host.
func NewService(fetcher Fetcher, baseURL string, logger *zap.Logger) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{fetcher: fetcher, baseURL: baseURL, logger: logger}
}

// GetLunch fetches the building's menu page and returns the rendered
// markdown document. It fails on fetch errors or when the page no
// longer carries the expected fields; neither case is retried.
func (s *Service) GetLunch(ctx context.Context, building Building) (string, error) {
	url := building.URL(s.baseURL)
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.logger.Warn("menu page fetch failed",
			zap.String("building", building.String()),
			zap.String("url", url),
			zap.Error(err),
		)
		return "", fmt.Errorf("fetch menu page: %w", err)
	}

	menu, err := Extract(bytes.NewReader(body))
	if err != nil {
		s.logger.Warn("menu extraction failed",
			zap.String("building", building.String()),
			zap.Error(err),
		)
		return "", err
	}

	return menu.Markdown(), nil
}
