// Package config defines the DXA run Configuration record and its
// functional-option constructor, following the teacher's builder package
// convention: a private struct with sane defaults, a list of Option values
// applied in order, and fail-fast validation performed once at the end of
// construction rather than scattered through the pipeline.
package config
