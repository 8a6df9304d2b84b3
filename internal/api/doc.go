// Package api hosts the HTTP server, middleware, and the slash-command
// handlers. Notable routes:
//   - GET /healthz / readyz for Kubernetes probes.
//   - GET /metrics for Prometheus scraping.
//   - GET /api/buildings for the supported building identifiers.
//   - GET /api/{building}/lunch for the rendered menu as a Mattermost
//     command response.
package api
