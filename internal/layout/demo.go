package layout

import (
	_ "embed"
)

//go:embed demo.yaml
var demo []byte

// Demo returns the built-in demo layout.
func Demo() *Layout {
	l, err := Parse(demo)
	if err != nil {
		panic("layout: built-in demo is invalid: " + err.Error())
	}
	return l
}
