package domain

import (
	"fmt"

	apperrors "dayplanner/internal/platform/errors"
)

// Window is the inclusive range of hours rendered as slots.
type Window struct {
	Start int
	End   int
}

func NewWindow(start, end int) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) Validate() error {
	if w.Start < 0 || w.End > 23 || w.Start > w.End {
		return fmt.Errorf("%w: %d..%d", apperrors.ErrInvalidWindow, w.Start, w.End)
	}
	return nil
}

func (w Window) Contains(hour int) bool {
	return hour >= w.Start && hour <= w.End
}

func (w Window) Hours() []int {
	out := make([]int, 0, w.End-w.Start+1)
	for h := w.Start; h <= w.End; h++ {
		out = append(out, h)
	}
	return out
}
