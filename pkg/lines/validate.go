package lines

import (
	"fmt"
	"math"

	"github.com/akeil/rmdoc/internal/errors"
)

// Validate checks this drawing and all layers, strokes and dots for valid data.
// Returns an error if invalid data is found, nil if everything is fine.
func (d *Drawing) Validate() error {
	if d.Version != V3 && d.Version != V5 {
		return errors.NewValidationError("invalid version: %v", d.Version)
	}

	if len(d.Layers) == 0 {
		return errors.NewValidationError("drawing must have at least one layer")
	}

	for i, l := range d.Layers {
		err := l.Validate()
		if err != nil {
			return fmt.Errorf("layer %d: %w", i+1, err)
		}
	}

	return nil
}

// Validate checks a layer and all associated strokes and dots for valid data.
func (l *Layer) Validate() error {
	for _, s := range l.Strokes {
		err := s.Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks a stroke and the associated dots for valid data.
func (s *Stroke) Validate() error {
	err := validateBrushType(s.BrushType)
	if err != nil {
		return err
	}

	if !validColor(s.BrushColor) {
		return errors.NewValidationError("invalid color: %v", s.BrushColor)
	}

	// sizes other than the three UI sizes occur through scaling
	if s.BrushSize <= 0 || math.IsNaN(float64(s.BrushSize)) {
		return errors.NewValidationError("invalid brush size: %v", s.BrushSize)
	}

	for _, d := range s.Dots {
		err = d.Validate()
		if err != nil {
			return err
		}
	}

	return nil
}

// Validate checks a dot for valid data.
func (d *Dot) Validate() error {
	if d.X < 0 || d.X > MaxWidth {
		return errors.NewValidationError("invalid x-coordinate: %v", d.X)
	}

	if d.Y < 0 || d.Y > MaxHeight {
		return errors.NewValidationError("invalid y-coordinate: %v", d.Y)
	}

	// TODO: not sure what the MAX value for Speed should be
	if d.Speed < 0 {
		return errors.NewValidationError("invalid speed value: %v", d.Speed)
	}

	if d.Width < 0 {
		return errors.NewValidationError("invalid width value: %v", d.Width)
	}

	if d.Pressure < 0 || d.Pressure > 1 {
		return errors.NewValidationError("invalid pressure value: %v", d.Pressure)
	}

	return nil
}

func validateBrushType(b BrushType) error {
	switch b {
	case PaintBrush,
		Pencil,
		Ballpoint,
		Marker,
		Fineliner,
		Highlighter,
		Eraser,
		MechanicalPencil,
		EraseArea,
		PaintBrushV5,
		MechanicalPencilV5,
		PencilV5,
		BallpointV5,
		MarkerV5,
		FinelinerV5,
		HighlighterV5,
		CalligraphyV5:
		return nil
	default:
		return errors.NewValidationError("invalid brush type: %v", b)
	}
}
