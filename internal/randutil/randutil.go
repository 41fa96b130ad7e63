// Package randutil provides the seedable random source shared by the
// generation packages. Injecting a source built here makes every
// generator reproducible.
package randutil

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
)

// New returns a seeded generator. The same seed always yields the same
// draw sequence.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// reader adapts a *rand.Rand to io.Reader so ID generation can draw
// from the same injected source as everything else.
type reader struct {
	r *rand.Rand
}

// Reader wraps r as an io.Reader producing its byte stream.
func Reader(r *rand.Rand) io.Reader {
	return reader{r: r}
}

func (rd reader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], rd.r.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}
