package apfactorial

import (
	"fmt"
	"math/big"
)

// PoleError reports an evaluation at a negative integer, where Gamma(x+1)
// has a pole and the factorial is undefined.
type PoleError struct {
	X *big.Int
}

func (e *PoleError) Error() string {
	return fmt.Sprintf("factorial undefined for negative integer %s (gamma pole at %s)",
		e.X, new(big.Int).Add(e.X, big.NewInt(1)))
}

// ConfigError reports a precision or threshold outside the valid
// positive-integer range. Detected before any computation starts.
type ConfigError struct {
	Param string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %d: must be a positive integer", e.Param, e.Value)
}
