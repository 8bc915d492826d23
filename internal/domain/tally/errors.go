package tally

import (
	"fmt"

	"github.com/okian/podium/internal/domain/model"
)

// ErrSchema reports an input table without the columns an aggregate needs.
var ErrSchema = fmt.Errorf("tally: %w", model.ErrSchema)
