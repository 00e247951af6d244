package rmdoc

import (
	"errors"
	"fmt"
)

// Stage names the step of loading or rendering at which an error occurred.
type Stage int

const (
	StageMetadata Stage = iota + 1
	StageContent
	StagePagedata
	StagePage
	StageTemplate
	StageRender
)

func (s Stage) String() string {
	switch s {
	case StageMetadata:
		return "metadata"
	case StageContent:
		return "content"
	case StagePagedata:
		return "pagedata"
	case StagePage:
		return "page"
	case StageTemplate:
		return "template"
	case StageRender:
		return "render"
	default:
		return "UNKNOWN"
	}
}

// Kind classifies an error.
type Kind int

const (
	// KindIO means a file was missing or could not be read.
	KindIO Kind = iota + 1
	// KindParse means a file was read but its content is malformed.
	KindParse
	// KindStructural means the metadata for a node is missing or invalid.
	// A node without valid metadata is neither a document nor a collection.
	KindStructural
	// KindRender means drawing failed or a configured template could not be
	// used.
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindStructural:
		return "structural"
	case KindRender:
		return "render"
	default:
		return "UNKNOWN"
	}
}

// Error is returned by all load and render operations.
//
// The wrapped error is available through errors.Unwrap, so checks like
// errors.Is(err, fs.ErrNotExist) work as expected.
type Error struct {
	Stage Stage
	Kind  Kind
	// Path is the file that was processed, if any.
	Path string
	// Page is the ID of the affected page for StagePage errors.
	Page string
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%v %v error", e.Stage, e.Kind)
	if e.Page != "" {
		msg += fmt.Sprintf(" (page %v)", e.Page)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" at %q", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(s Stage, k Kind, path string, err error) *Error {
	return &Error{Stage: s, Kind: k, Path: path, Err: err}
}

// StageOf returns the stage at which err occurred or zero if err is not an
// *Error.
func StageOf(err error) Stage {
	var e *Error
	if errors.As(err, &e) {
		return e.Stage
	}
	return 0
}

// KindOf returns the kind of err or zero if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsIO tells if err is caused by a missing or unreadable file.
func IsIO(err error) bool {
	return KindOf(err) == KindIO
}

// IsParse tells if err is caused by malformed data.
func IsParse(err error) bool {
	return KindOf(err) == KindParse
}

// IsStructural tells if err is caused by missing or invalid metadata.
func IsStructural(err error) bool {
	return KindOf(err) == KindStructural
}

// IsRender tells if err occurred while drawing a document.
func IsRender(err error) bool {
	return KindOf(err) == KindRender
}
