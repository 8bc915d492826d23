package dataset

import (
	"errors"
	"fmt"

	"github.com/okian/podium/internal/domain/model"
)

// Sentinel kinds for dataset errors.
var (
	ErrSchema = fmt.Errorf("dataset: %w", model.ErrSchema)
	ErrParse  = errors.New("dataset: parse failed")
	ErrOpen   = errors.New("dataset: open failed")
)
