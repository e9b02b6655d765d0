package cave

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// streamSalt separates the second PCG word from the first.
const streamSalt = "/cavegen"

// ResolveSeed returns the effective seed for a generation. A random seed is
// the decimal UnixNano of now.
func ResolveSeed(cfg Config, now time.Time) string {
	if cfg.UseRandomSeed {
		return strconv.FormatInt(now.UnixNano(), 10)
	}
	return cfg.Seed
}

// NewRNG creates a deterministic RNG for the given seed string.
// The same seed always yields the same stream within this package.
func NewRNG(seed string) *rand.Rand {
	return rand.New(rand.NewPCG(
		xxhash.Sum64String(seed),
		xxhash.Sum64String(seed+streamSalt),
	))
}
