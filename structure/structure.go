package structure

import (
	"fmt"

	"github.com/rodyherrera/dxa/atom"
	"github.com/rodyherrera/dxa/config"
)

// Classify runs the identification mode selected by cfg (frozen for the
// whole frame, the choice is frozen per frame) over every
// atom in s, writing Structure/Orientation/FlagDisordered in place.
func Classify(cfg config.Config, s *atom.Set) (Result, error) {
	switch cfg.IdentificationMode {
	case config.CNA:
		return ClassifyCNA(s), nil
	case config.PTM:
		return ClassifyPTM(s), nil
	default:
		return Result{}, fmt.Errorf("structure: mode %v: %w", cfg.IdentificationMode, ErrUnsupportedMode)
	}
}
