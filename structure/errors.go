package structure

import "errors"

// ErrUnsupportedMode is returned when Classify is called with an
// IdentificationMode that has no implementation (should be unreachable;
// config.IdentificationMode only enumerates CNA and PTM).
var ErrUnsupportedMode = errors.New("structure: unsupported identification mode")
