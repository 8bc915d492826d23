package types

import "errors"

// Query outcomes shared by the service and the HTTP API. NotFound and NoData
// are expected results of user input, not faults.
var (
	ErrNotFound      = errors.New("not found")
	ErrNoData        = errors.New("no data")
	ErrUnknownSeason = errors.New("unknown season")
	ErrNotStarted    = errors.New("service not started")
)
