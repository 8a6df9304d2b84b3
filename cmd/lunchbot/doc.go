// Package main hosts the lunch service entrypoint.
//
// Architecture overview:
//   - HTTP API: internal/api.Server exposes health, metrics, and the
//     slash-command endpoints. A building path parameter is parsed
//     case-insensitively against the closed registry before any
//     network activity happens.
//   - Fetch pipeline: a Colly-based fetcher GETs the building's menu
//     page from the catering host, internal/lunch extracts the three
//     fixed menu fields with goquery, and the result is rendered as a
//     small markdown document wrapped in a Mattermost command payload.
//   - Configuration & plumbing: Viper populates config from env/files;
//     zap provides structured logging; Prometheus metrics are exported
//     via the metrics middleware and /metrics handler. The service is
//     stateless across requests, suitable for Cloud Run scale-out.
//
// Operational notes:
//   - Each request is an independent single fetch with no retries, no
//     caching and no shared state; failures surface as one generic 500.
//   - Shutdown is coordinated via context cancellation from SIGINT or
//     SIGTERM with a bounded drain window.
//
// Run locally: go run ./cmd/lunchbot -config config.yaml (or rely
// solely on LUNCHBOT_* env overrides).
package main
