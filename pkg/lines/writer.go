package lines

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// MarshalBinary returns the byte representation of the drawing.
func (d *Drawing) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	err := WriteDrawing(&buf, d)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteDrawing writes the given drawing to the given writer.
func WriteDrawing(w io.Writer, d *Drawing) error {
	err := writeHeader(w, d.Version)
	if err != nil {
		return err
	}

	err = binary.Write(w, endianess, uint32(d.NumLayers()))
	if err != nil {
		return err
	}

	for _, l := range d.Layers {
		err = writeLayer(w, d.Version, l)
		if err != nil {
			return err
		}
	}

	return nil
}

func writeHeader(w io.Writer, v Version) error {
	var h string
	switch v {
	case V3:
		h = headerV3
	case V5:
		h = headerV5
	default:
		return fmt.Errorf("invalid version %v", v)
	}

	_, err := io.WriteString(w, h)
	return err
}

func writeLayer(w io.Writer, v Version, l Layer) error {
	err := binary.Write(w, endianess, uint32(len(l.Strokes)))
	if err != nil {
		return err
	}

	for _, s := range l.Strokes {
		err = writeStroke(w, v, s)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeStroke(w io.Writer, v Version, s Stroke) error {
	fields := []interface{}{s.BrushType, s.BrushColor, s.Padding, s.BrushSize}
	if v == V5 {
		fields = append(fields, s.Unknown)
	}
	fields = append(fields, uint32(len(s.Dots)))

	for _, f := range fields {
		err := binary.Write(w, endianess, f)
		if err != nil {
			return err
		}
	}

	for _, d := range s.Dots {
		err := binary.Write(w, endianess, d)
		if err != nil {
			return err
		}
	}

	return nil
}
