package cell

import (
	"fmt"

	"github.com/rodyherrera/dxa/dxaerr"
)

// ErrSingularCell is returned by NewCell when det(H) == 0.
var ErrSingularCell = fmt.Errorf("cell: basis matrix is singular: %w", dxaerr.ErrCellDegenerate)

// ErrPBCTooNarrow is returned by NewCell when a periodic axis is narrower
// than 2*cutoff (a minimum-image convention would otherwise double-count).
var ErrPBCTooNarrow = fmt.Errorf("cell: periodic axis narrower than 2*cutoff: %w", dxaerr.ErrCellDegenerate)

// ErrNonPositiveCutoff is returned when a neighbor finder is built with a
// cutoff <= 0.
var ErrNonPositiveCutoff = fmt.Errorf("cell: cutoff must be positive: %w", dxaerr.ErrConfigInvalid)
