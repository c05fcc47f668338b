package convection

import "errors"

var (
	// ErrNoParticles is returned when the tag and radius filter leaves nothing to average.
	ErrNoParticles = errors.New("convection: no particles selected")

	// ErrSamples is returned for a bin count below what the estimate needs.
	ErrSamples = errors.New("convection: too few radial samples")

	// ErrFlatRange is returned when all selected particles sit at one radius.
	ErrFlatRange = errors.New("convection: selected particles span no radial distance")
)
