package preprocess

import "errors"

// ErrInvalidSeason reports an event whose season is not Summer or Winter.
var ErrInvalidSeason = errors.New("invalid season")
