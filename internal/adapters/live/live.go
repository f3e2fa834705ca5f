package live

import (
	"math/rand"
	"time"
)

// Upstream results carry no carrier quality signal, so live offers score
// against a neutral baseline and differentiate on price and directness.
const liveOfferQuality = 75.0

func scoreRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
