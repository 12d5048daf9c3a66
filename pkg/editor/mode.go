package editor

import (
	"github.com/matzehuels/graphcanvas/pkg/errors"
)

// Mode is the active editing tool.
type Mode string

const (
	ModeAddVertex  Mode = "add_vertex"
	ModeAddEdge    Mode = "add_edge"
	ModeMoveVertex Mode = "move_vertex"
	ModeEditVertex Mode = "edit_vertex"
	ModeDelete     Mode = "delete"
)

// Modes lists every mode in toolbar order.
var Modes = []Mode{ModeAddVertex, ModeAddEdge, ModeMoveVertex, ModeEditVertex, ModeDelete}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidMode, "unknown editing mode %q", s)
}

func (m Mode) String() string { return string(m) }
