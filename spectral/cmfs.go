package spectral

import (
	"fmt"
)

// CMFS is a set of colour matching functions, x̄, ȳ and z̄, sharing one
// wavelength domain.
type CMFS struct {
	Name    string
	X, Y, Z *Distribution
}

// NewCMFS builds colour matching functions from rows of (x̄, ȳ, z̄) values
// over shape.
func NewCMFS(name string, shape Shape, rows [][3]float64) (*CMFS, error) {
	var xs, ys, zs []float64
	for _, r := range rows {
		xs, ys, zs = append(xs, r[0]), append(ys, r[1]), append(zs, r[2])
	}
	ans := &CMFS{Name: name}
	var err error
	if ans.X, err = FromValues(name+" x̄", shape, xs); err != nil {
		return nil, err
	}
	if ans.Y, err = FromValues(name+" ȳ", shape, ys); err != nil {
		return nil, err
	}
	if ans.Z, err = FromValues(name+" z̄", shape, zs); err != nil {
		return nil, err
	}
	return ans, nil
}

func (c *CMFS) Shape() Shape { return c.Y.Shape() }

// Align aligns all three functions to shape.
func (c *CMFS) Align(shape Shape) (*CMFS, error) {
	ans := &CMFS{Name: c.Name}
	var err error
	if ans.X, err = c.X.Align(shape); err != nil {
		return nil, fmt.Errorf("aligning %s: %w", c.Name, err)
	}
	if ans.Y, err = c.Y.Align(shape); err != nil {
		return nil, fmt.Errorf("aligning %s: %w", c.Name, err)
	}
	if ans.Z, err = c.Z.Align(shape); err != nil {
		return nil, fmt.Errorf("aligning %s: %w", c.Name, err)
	}
	return ans, nil
}

// alignIfNeeded skips the resampling work when d is already on shape.
func alignIfNeeded(d *Distribution, shape Shape) (*Distribution, error) {
	if d.uniform && d.shape == shape {
		return d, nil
	}
	return d.Align(shape)
}

func (c *CMFS) alignIfNeeded(shape Shape) (*CMFS, error) {
	if c.X.uniform && c.Shape() == shape {
		return c, nil
	}
	return c.Align(shape)
}
