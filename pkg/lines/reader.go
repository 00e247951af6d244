package lines

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// ReadDrawing decodes a drawing from the given reader.
func ReadDrawing(r io.Reader) (*Drawing, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a drawing from the given bytes.
func Parse(data []byte) (*Drawing, error) {
	d := &Drawing{}
	err := d.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalBinary reads a drawing from the given bytes.
func (d *Drawing) UnmarshalBinary(data []byte) error {
	r := newReader(data)

	err := r.readHeader()
	if err != nil {
		return err
	}
	d.Version = r.version

	nLayers, err := r.readNumber()
	if err != nil {
		return fmt.Errorf("failed to read number of layers: %w", err)
	}
	if int64(nLayers) > int64(r.Len()) {
		return fmt.Errorf("invalid number of layers: %d", nLayers)
	}

	d.Layers = make([]Layer, nLayers)
	for i := uint32(0); i < nLayers; i++ {
		nStrokes, err := r.readNumber()
		if err != nil {
			return fmt.Errorf("layer %d: failed to read number of strokes: %w", i+1, err)
		}
		if int64(nStrokes) > int64(r.Len()) {
			return fmt.Errorf("layer %d: invalid number of strokes: %d", i+1, nStrokes)
		}

		d.Layers[i].Strokes = make([]Stroke, nStrokes)
		for j := uint32(0); j < nStrokes; j++ {
			s, err := r.readStroke()
			if err != nil {
				return fmt.Errorf("layer %d, stroke %d: %w", i+1, j+1, err)
			}
			d.Layers[i].Strokes[j] = s
		}
	}

	if r.Len() != 0 {
		return fmt.Errorf("unexpected %d trailing bytes", r.Len())
	}

	return nil
}

type reader struct {
	*bytes.Reader
	version Version
}

func newReader(data []byte) *reader {
	// version will be replaced after reading the header
	return &reader{bytes.NewReader(data), V5}
}

// readHeader and check if it is one of the supported headers.
func (r *reader) readHeader() error {
	buf := make([]byte, headerLen)

	n, err := io.ReadFull(r, buf)
	if err != nil || n != headerLen {
		return fmt.Errorf("unexpected header size")
	}

	switch string(buf) {
	case headerV3:
		r.version = V3
	case headerV5:
		r.version = V5
	default:
		return fmt.Errorf("unsupported header %q", buf)
	}

	return nil
}

// readStroke reads a Stroke (incl. Dots) from the reader.
func (r *reader) readStroke() (Stroke, error) {
	var s Stroke

	err := binary.Read(r, endianess, &s.BrushType)
	if err != nil {
		return s, fmt.Errorf("failed to read brush type")
	}

	err = binary.Read(r, endianess, &s.BrushColor)
	if err != nil {
		return s, fmt.Errorf("failed to read brush color")
	}
	if !validColor(s.BrushColor) {
		return s, fmt.Errorf("unsupported brush color %d", uint32(s.BrushColor))
	}

	err = binary.Read(r, endianess, &s.Padding)
	if err != nil {
		return s, fmt.Errorf("failed to read padding")
	}

	err = binary.Read(r, endianess, &s.BrushSize)
	if err != nil {
		return s, fmt.Errorf("failed to read brush size")
	}

	// additional attribute in v5 only
	if r.version == V5 {
		err = binary.Read(r, endianess, &s.Unknown)
		if err != nil {
			return s, fmt.Errorf("failed to read unknown attribute")
		}
	}

	nDots, err := r.readNumber()
	if err != nil {
		return s, fmt.Errorf("failed to read number of dots")
	}
	if int64(nDots)*dotSize > int64(r.Len()) {
		return s, fmt.Errorf("invalid number of dots: %d", nDots)
	}

	s.Dots = make([]Dot, nDots)
	for i := uint32(0); i < nDots; i++ {
		err = binary.Read(r, endianess, &s.Dots[i])
		if err != nil {
			return s, fmt.Errorf("failed to read dot %d", i+1)
		}
	}

	return s, nil
}

// dotSize is the encoded size of a Dot: six float32 values.
const dotSize = 6 * 4

// readNumber reads a uint32 from the reader.
func (r *reader) readNumber() (uint32, error) {
	var n uint32
	err := binary.Read(r, endianess, &n)
	return n, err
}
