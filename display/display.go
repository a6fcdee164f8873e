// Package display maps the interface density slider to a root font size.
package display

import "fmt"

// ScaleHandler applies a root font size. The caller owns the actual document or theme.
type ScaleHandler interface {
	SetRootFontSize(px int) error
}

type ScaleHandlerFunc func(px int) error

func (f ScaleHandlerFunc) SetRootFontSize(px int) error {
	return f(px)
}

type Density struct {
	Min     int
	Max     int
	Step    int
	Default int
	handler ScaleHandler
	current int
}

// NewDensity returns the slider with the stock 14px to 18px range in 2px steps.
func NewDensity(handler ScaleHandler) *Density {
	return &Density{Min: 14, Max: 18, Step: 2, Default: 16, handler: handler, current: 16}
}

func (d *Density) Current() int {
	return d.current
}

// Apply snaps value onto the slider and hands the resulting size to the handler. The current size only
// changes if the handler accepts it.
func (d *Density) Apply(value int) (int, error) {
	if d.handler == nil {
		return d.current, fmt.Errorf("no scale handler")
	}
	px := d.snap(value)
	if err := d.handler.SetRootFontSize(px); err != nil {
		return d.current, fmt.Errorf("unable to set root font size to %dpx: %w", px, err)
	}
	d.current = px
	return px, nil
}

func (d *Density) Reset() (int, error) {
	return d.Apply(d.Default)
}

func (d *Density) snap(value int) int {
	if value <= d.Min {
		return d.Min
	}
	if value >= d.Max {
		return d.Max
	}
	if d.Step <= 0 {
		return value
	}
	steps := (value - d.Min + d.Step/2) / d.Step
	px := d.Min + steps*d.Step
	if px > d.Max {
		px = d.Max
	}
	return px
}
