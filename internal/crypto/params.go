package crypto

import (
	"errors"
	"fmt"
)

// ErrBadParams is returned for scrypt parameters outside accepted limits.
var ErrBadParams = errors.New("invalid scrypt parameters")

const (
	maxScryptN  = 1 << 20
	maxScryptP  = 16
	maxScryptRP = 1 << 30
	// maxScryptMem bounds the buffers scrypt allocates: 128*r*N for V plus
	// 128*r*p for B.
	maxScryptMem = 1 << 30
)

// Params are the scrypt tunables stored in an envelope.
type Params struct {
	N uint64
	R uint64
	P uint64
}

// DefaultParams returns the tunables used for new envelopes.
func DefaultParams() Params { return Params{N: 1 << 15, R: 8, P: 1} }

// Validate checks that p is accepted by scrypt and that the memory it
// requires stays within maxScryptMem.
func (p Params) Validate() error {
	switch {
	case p.N < 2 || p.N&(p.N-1) != 0:
		return fmt.Errorf("%w: N=%d is not a power of two greater than 1", ErrBadParams, p.N)
	case p.N > maxScryptN:
		return fmt.Errorf("%w: N=%d exceeds %d", ErrBadParams, p.N, maxScryptN)
	case p.R == 0 || p.P == 0:
		return fmt.Errorf("%w: r and p must be positive", ErrBadParams)
	case p.P > maxScryptP:
		return fmt.Errorf("%w: p=%d exceeds %d", ErrBadParams, p.P, maxScryptP)
	case p.R >= maxScryptRP || p.R*p.P >= maxScryptRP:
		return fmt.Errorf("%w: r*p=%d*%d must be below %d", ErrBadParams, p.R, p.P, maxScryptRP)
	case p.R > maxScryptMem/(128*(p.N+p.P)):
		return fmt.Errorf("%w: N=%d r=%d p=%d needs more than %d bytes", ErrBadParams, p.N, p.R, p.P, maxScryptMem)
	}
	return nil
}
