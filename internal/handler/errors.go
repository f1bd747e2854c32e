package handler

import "errors"

// errStatusEndpointDisabled is returned by NewHandlers when no metrics
// address is configured.
var errStatusEndpointDisabled = errors.New("status endpoint is disabled")
