package ui

import (
	"image"
	"math"
	"strconv"

	"particles/internal/core"
	"particles/internal/sims/sand"
)

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// refresh pulls the control's current value out of a snapshot.
func (s *hudControlState) refresh(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.floatValue = float64(parsed)
		s.value = strconv.Itoa(parsed)
		s.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = formatFloat(s.control, parsed)
		s.hasValue = true
	}
}

func (s *hudControlState) intTarget(direction int) int {
	step := int(math.Round(s.control.Step))
	if step <= 0 {
		step = 1
	}
	return s.intValue + direction*step
}

func (s *hudControlState) floatTarget(direction int) float64 {
	step := s.control.Step
	if step <= 0 {
		step = 0.05
	}
	return s.floatValue + float64(direction)*step
}

// canAdjust reports whether one step in direction stays inside the range.
func (s *hudControlState) canAdjust(direction int) bool {
	if !s.hasValue || direction == 0 {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		target := s.intTarget(direction)
		return float64(target) >= s.control.Min && float64(target) <= s.control.Max
	case core.ParamTypeFloat:
		target := s.floatTarget(direction)
		return target >= s.control.Min-1e-9 && target <= s.control.Max+1e-9
	}
	return false
}

// adjust steps the control through the setters and records the new value.
func (s *hudControlState) adjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !s.canAdjust(direction) {
		return false
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		if ints == nil {
			return false
		}
		target := s.intTarget(direction)
		if !ints.SetIntParameter(s.control.Key, target) {
			return false
		}
		s.intValue = target
		s.floatValue = float64(target)
		s.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		if floats == nil {
			return false
		}
		target := math.Min(math.Max(s.floatTarget(direction), s.control.Min), s.control.Max)
		if !floats.SetFloatParameter(s.control.Key, target) {
			return false
		}
		s.floatValue = target
		s.value = formatFloat(s.control, target)
		return true
	}
	return false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// BrushFootprint returns the display-space rectangle a brush of size b
// covers when centred on (col, row).
func BrushFootprint(col, row int, b sand.BrushSize) image.Rectangle {
	d := b.Delta()
	return image.Rect(col-d, row-d, col+d+1, row+d+1)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}
