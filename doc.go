/*
Package colorimetry computes reference colour data for the BabelColor Average
ColorChecker: tristimulus values, RGB values in common camera and display
colour spaces, ASTM E2022 weighting factors and chromatic adaptation matrices.

The computations live in the colorconv, spectral, rgbspace and datasets
packages. The generate-data and gen-ref commands emit their results as Go or
Rust source.
*/
package colorimetry

import "fmt"

type ColorimetryVersion struct {
	Major, Minor, Patch uint
}

func (v ColorimetryVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v ColorimetryVersion) Equal(o ColorimetryVersion) bool {
	return v == o
}

func (v ColorimetryVersion) After(o ColorimetryVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v ColorimetryVersion) Before(o ColorimetryVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = ColorimetryVersion{1, 0, 0}
