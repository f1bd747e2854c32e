package server

import "errors"

var (
	errNoMetricsAddress = errors.New("status endpoint address is not configured")
	errNilHandler       = errors.New("status endpoint handler is nil")
)
