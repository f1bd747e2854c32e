// Package server runs the optional local status endpoint of the sync client.
//
// The server is started by the watch mode next to the periodic sync job and
// stops gracefully when its context is cancelled.
package server
