package diag

import (
	"fmt"

	"github.com/azybler/osm2lanes/pkg/road"
)

// RoadError is the sum of ways a transform call can fail outright: a single
// diagnostic escalated to an error, a warnings collection escalated wholesale
// (Config.ErrorOnWarnings), or a failed round-trip check.
type RoadError struct {
	Msg         *Msg
	Warnings    *Warnings
	RoundtripGot  []road.Lane
	RoundtripWant []road.Lane
}

// ErrMsg wraps a single Msg as an error.
func ErrMsg(m Msg) *RoadError {
	return &RoadError{Msg: &m}
}

// ErrWarnings escalates an entire Warnings collection to an error.
func ErrWarnings(w *Warnings) *RoadError {
	return &RoadError{Warnings: w}
}

// ErrRoundtrip reports that re-running tags→lanes on the tags emitted by
// lanes→tags produced a different lane list than the original.
func ErrRoundtrip(got, want []road.Lane) *RoadError {
	return &RoadError{RoundtripGot: got, RoundtripWant: want}
}

func (e *RoadError) Error() string {
	switch {
	case e.Msg != nil:
		return e.Msg.Error()
	case e.Warnings != nil:
		return fmt.Sprintf("%d warning(s) escalated to error, first: %s", e.Warnings.Len(), firstOrEmpty(e.Warnings))
	case e.RoundtripGot != nil || e.RoundtripWant != nil:
		return fmt.Sprintf("roundtrip mismatch: got %d lane(s), want %d lane(s)", len(e.RoundtripGot), len(e.RoundtripWant))
	default:
		return "unknown road error"
	}
}

func firstOrEmpty(w *Warnings) string {
	msgs := w.Messages()
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0].Error()
}
