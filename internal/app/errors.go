package service

import "github.com/okian/podium/internal/domain/types"

// Re-exported query outcomes.
var (
	ErrNotFound      = types.ErrNotFound
	ErrNoData        = types.ErrNoData
	ErrUnknownSeason = types.ErrUnknownSeason
	ErrNotStarted    = types.ErrNotStarted
)
