package holocard

import (
	"errors"
	"fmt"
)

// ErrExportActive is returned when an export is requested while the
// exporter's raster context is already owned by an in-flight export.
// Callers that need parallel exports must allocate one Exporter each.
var ErrExportActive = errors.New("holocard: export already in progress")

// ErrEncodeTimeout is returned when the GIF encoder fails to finish
// within RenderSettings.EncodeTimeout.
var ErrEncodeTimeout = errors.New("holocard: gif encode timed out")

// errIncompleteFrames guards the assembly gate: encoding must never
// start before every frame is attached.
var errIncompleteFrames = errors.New("not all frames attached before encode")

// ConfigError reports an invalid RenderSettings field. It is always
// returned before any rendering work starts.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("holocard: invalid %s: %s", e.Field, e.Reason)
}

// RenderError reports a failure while drawing a single frame. Rendering
// is deterministic given fixed inputs, so this indicates a programming
// or asset defect rather than a transient condition; the export is
// aborted with no partial output and there is no automatic retry.
type RenderError struct {
	Frame int
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("holocard: rendering frame %d: %v", e.Frame, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// EncodeError wraps a failure reported by the GIF encoding stage.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("holocard: encoding gif: %v", e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
