// Package glyph types: enums, options and sentinel errors.
//
// Error policy (same as everywhere in this module):
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context via %w.
//   - Generation itself never fails: all errors are validation or
//     parse errors raised before the first random draw.
package glyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyph configuration and token parsing.
var (
	// ErrResolution indicates Options.Resolution < 2: the grid spacing
	// 1/(resolution-1) would be undefined or degenerate.
	ErrResolution = errors.New("glyph: resolution must be at least 2")
	// ErrDensity indicates Options.Density < 1: no walk attempts.
	ErrDensity = errors.New("glyph: density must be at least 1")
	// ErrUnknownSymmetry indicates an unrecognized symmetry token.
	ErrUnknownSymmetry = errors.New("glyph: unknown symmetry")
	// ErrUnknownMotif indicates an unrecognized motif token.
	ErrUnknownMotif = errors.New("glyph: unknown motif")
)

// Symmetry selects which midlines generated strokes are mirrored across
// after the random walk completes.
type Symmetry int

const (
	// Asymmetric applies no mirroring.
	Asymmetric Symmetry = iota
	// Horizontal mirrors every stroke across the vertical midline (x ↦ 1-x).
	Horizontal
	// Vertical mirrors every stroke across the horizontal midline (y ↦ 1-y).
	Vertical
	// HorizontalVertical applies Horizontal first, then Vertical over the
	// grown list, so the result includes the 180° rotation of every stroke.
	HorizontalVertical
)

// String returns the canonical token accepted by ParseSymmetry.
func (s Symmetry) String() string {
	switch s {
	case Asymmetric:
		return "asymmetric"
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case HorizontalVertical:
		return "horizontalvertical"
	default:
		return fmt.Sprintf("symmetry(%d)", int(s))
	}
}

// ParseSymmetry maps a textual token to a Symmetry. Unrecognized tokens
// return ErrUnknownSymmetry; there is no silent default.
func ParseSymmetry(token string) (Symmetry, error) {
	switch token {
	case "asymmetric":
		return Asymmetric, nil
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	case "horizontalvertical":
		return HorizontalVertical, nil
	default:
		return Asymmetric, fmt.Errorf("%w: %q", ErrUnknownSymmetry, token)
	}
}

// Motif selects the rule family displacing a stroke's endpoint from its
// start point.
type Motif int

const (
	// Orthogonal strokes move along a single axis and are pushed inward
	// when the start coordinate sits on the grid boundary.
	Orthogonal Motif = iota
	// Diagonal strokes may move along both axes independently, with no
	// boundary special-casing.
	Diagonal
)

// String returns the canonical token accepted by ParseMotif.
func (m Motif) String() string {
	switch m {
	case Orthogonal:
		return "orthogonal"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("motif(%d)", int(m))
	}
}

// ParseMotif maps a textual token to a Motif. Unrecognized tokens
// return ErrUnknownMotif; there is no silent default.
func ParseMotif(token string) (Motif, error) {
	switch token {
	case "orthogonal":
		return Orthogonal, nil
	case "diagonal":
		return Diagonal, nil
	default:
		return Orthogonal, fmt.Errorf("%w: %q", ErrUnknownMotif, token)
	}
}

// Options configures glyph generation. The zero value is invalid; start
// from DefaultOptions.
//
// Fields:
//   - Resolution — discrete grid positions per axis, ≥ 2.
//   - Density    — walk attempts per grid position, ≥ 1; the attempt
//     budget per glyph is Density·Resolution.
//   - Symmetry   — post-generation mirroring rule.
//   - Motif      — endpoint displacement rule.
//   - SuppressDuplicates — when true, a candidate stroke equal (in
//     either endpoint order) to an already accepted stroke is rejected
//     before symmetry expansion. Off by default: duplicate strokes are
//     invisible in rendered output, and skipping the check keeps
//     generation linear in the attempt budget.
type Options struct {
	Resolution         int
	Density            int
	Symmetry           Symmetry
	Motif              Motif
	SuppressDuplicates bool
}

// DefaultOptions returns a valid starting configuration:
// a 4×4 grid, density 3, no symmetry, orthogonal strokes.
func DefaultOptions() Options {
	return Options{
		Resolution: 4,
		Density:    3,
		Symmetry:   Asymmetric,
		Motif:      Orthogonal,
	}
}

// Validate checks the configuration invariants. It must pass before any
// random draw occurs; Generate and New call it on entry.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Resolution < 2 {
		return fmt.Errorf("%w: got %d", ErrResolution, o.Resolution)
	}
	if o.Density < 1 {
		return fmt.Errorf("%w: got %d", ErrDensity, o.Density)
	}

	return nil
}
