package rmdoc

import (
	"encoding/json"
	"fmt"
)

// Orientation is the layout of a notebook page.
// It can be Portrait or Landscape.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

// Page dimensions in points. One point corresponds to one pixel
// on the tablet's display.
const (
	pageShort = 1404
	pageLong  = 1872
)

// Size returns the width and height of a page with this orientation,
// in points.
func (o Orientation) Size() (width, height float64) {
	if o == Landscape {
		return pageLong, pageShort
	}
	return pageShort, pageLong
}

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return "UNKNOWN"
	}
}

func (o *Orientation) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	var x Orientation
	switch s {
	case "portrait":
		x = Portrait
	case "landscape":
		x = Landscape
	default:
		return fmt.Errorf("invalid orientation %q", s)
	}

	*o = x
	return nil
}

func (o Orientation) MarshalJSON() ([]byte, error) {
	s := o.String()
	if s == "UNKNOWN" {
		return nil, fmt.Errorf("invalid orientation %d", int(o))
	}
	return json.Marshal(s)
}
