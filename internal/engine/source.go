package engine

import (
	"crypto/cipher"
	"encoding/binary"
	"math"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
)

// Source provides the randomness for shuffling and cutting. *rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSeededSource gives reproducible deals for simulations and tests.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

type streamSource struct {
	stream cipher.Stream
}

// NewStreamSource draws from the Ed25519 suite random stream, for deals that
// must not be predictable from a seed.
func NewStreamSource() Source {
	return &streamSource{stream: suites.MustFind("Ed25519").RandomStream()}
}

func (s *streamSource) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	var buf [8]byte
	for {
		buf = [8]byte{}
		s.stream.XORKeyStream(buf[:], buf[:])
		v := binary.BigEndian.Uint64(buf[:])
		if v < limit {
			return int(v % bound)
		}
	}
}
