// Package preview serves a site over HTTP during development.
//
// Every request renders the page fresh through the render package, so
// edits to page functions show up on the next refresh. The server also
// provides:
//
//   - Prometheus metrics on /metrics (render counts, durations, sizes)
//   - OpenTelemetry spans per rendered page
//   - a live-reload WebSocket on /_blizzard/reload; POST the same path
//     to broadcast a reload to connected browsers
package preview
