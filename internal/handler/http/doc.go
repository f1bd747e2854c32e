// Package http implements the local status endpoint of the sync client.
//
// The endpoint is only started by the long-running watch mode. It exposes
// the Prometheus collectors, a liveness probe, the published shopping list
// view and a way to trigger a sync cycle, for dashboards and home
// automation running next to the client.
package http
