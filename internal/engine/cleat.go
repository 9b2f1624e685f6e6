package engine

import (
	"math"

	"github.com/Shivam-Bhardwaj/AutoCrate-V7/internal/model"
)

// CalculateCleatLayout spaces cleats along one panel axis: one cleat at each
// edge inset by half the cleat width, plus the minimum number of uniformly
// pitched intermediates needed to keep center-to-center spacing within
// maxSpacing.
func CalculateCleatLayout(span, cleatLength, cleatWidth, cleatThickness, maxSpacing float64) (model.CleatLayout, error) {
	if maxSpacing <= model.FloatTol {
		return model.CleatLayout{}, failf(InvalidCleatConstraint, "max spacing > 0", maxSpacing,
			"cleat spacing limit must be positive")
	}
	if span <= model.FloatTol {
		return model.CleatLayout{}, failf(InvalidCleatConstraint, "panel span > 0", span,
			"panel dimension must be positive")
	}

	// Distance between the two edge cleat centerlines.
	centerSpan := span - cleatWidth
	if centerSpan <= model.FloatTol {
		return model.CleatLayout{}, failf(InvalidCleatConstraint, "edge cleat span > 0", centerSpan,
			"panel span %.2f leaves no room between edge cleats of width %.2f", span, cleatWidth)
	}

	intermediates := int(math.Ceil(centerSpan/maxSpacing-model.FloatTol)) - 1
	if intermediates < 0 {
		intermediates = 0
	}
	count := 2 + intermediates

	pitch := centerSpan / float64(count-1)
	first := -centerSpan / 2
	positions := make([]float64, count)
	for i := range positions {
		positions[i] = first + float64(i)*pitch
	}

	return model.CleatLayout{
		Span:           span,
		CleatLength:    cleatLength,
		CleatWidth:     cleatWidth,
		CleatThickness: cleatThickness,
		Count:          count,
		Pitch:          pitch,
		Positions:      positions,
		MaxSpacing:     maxSpacing,
	}, nil
}
