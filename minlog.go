// Package minlog minimizes Boolean functions given as lists of minterms or
// maxterms with the Quine-McCluskey method.
//
//	expr, err := minlog.Minimize("F = m(4,8,10,11,12,15) + d(9,14)")
package minlog

import (
	"github.com/gnoswap-labs/minlog/minimize"
)

// Minimize returns the reduced expression of the equation in text, using the
// default configuration: an exact minimum cover, verified against the input.
func Minimize(text string) (string, error) {
	result, err := MinimizeWithConfig(text, minimize.DefaultConfig())
	if err != nil {
		return "", err
	}
	return result.Expression, nil
}

// MinimizeWithConfig runs the full pipeline with config and returns the whole
// result.
func MinimizeWithConfig(text string, config minimize.Config) (*minimize.Result, error) {
	engine, err := minimize.NewWithConfig(config, nil)
	if err != nil {
		return nil, err
	}
	return engine.Run(text)
}
