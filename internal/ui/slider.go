package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// keySlider is a horizontal slider that hands typed keys to onKey instead of
// moving itself. A tapped slider keeps focus, and focused widgets receive keys
// before the window does.
type keySlider struct {
	widget.Slider

	onKey func(*fyne.KeyEvent)
}

func newKeySlider(minValue, maxValue float64, onKey func(*fyne.KeyEvent)) *keySlider {
	s := &keySlider{onKey: onKey}
	s.Min = minValue
	s.Max = maxValue
	s.Step = 1
	s.Orientation = widget.Horizontal
	s.ExtendBaseWidget(s)
	return s
}

// TypedKey implements fyne.Focusable
func (s *keySlider) TypedKey(ev *fyne.KeyEvent) {
	if s.onKey != nil {
		s.onKey(ev)
	}
}
