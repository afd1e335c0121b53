package ring

import "errors"

// Sentinel errors returned by this package. Callers should use errors.Is,
// since constructors and kernels wrap these with call-site context via
// fmt.Errorf("...: %w", ...).
var (
	ErrInvalidArgument  = errors.New("ring: invalid argument")
	ErrModulusIsZero    = errors.New("ring: modulus is zero")
	ErrNotPrime         = errors.New("ring: modulus is not prime")
	ErrBadCongruence    = errors.New("ring: modulus does not satisfy q = 1 mod 2N")
	ErrNotPrimitiveRoot = errors.New("ring: supplied root is not a primitive root")
	ErrNoInverse        = errors.New("ring: value has no modular inverse")
	ErrNotEnoughPrimes  = errors.New("ring: exhausted search window for primes")
	ErrSearchFailed     = errors.New("ring: exhausted trials searching for a primitive root")
)
