package seed

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"
	mrand "math/rand/v2"
	"strconv"

	"golang.org/x/crypto/hkdf"
)

const keySize = 32

// Source derives random streams from a master secret.
type Source struct {
	master []byte
}

// New returns a source for phrase. An empty phrase draws a fresh random
// master, so the run is not reproducible.
func New(phrase string) (Source, error) {
	if phrase != "" {
		sum := sha256.Sum256([]byte(phrase))
		return Source{master: sum[:]}, nil
	}
	master := make([]byte, keySize)
	if _, err := rand.Read(master); err != nil {
		return Source{}, err
	}
	return Source{master: master}, nil
}

// Round returns the generator for round n.
func (s Source) Round(n int) *mrand.Rand {
	return s.stream("take5|round|" + strconv.Itoa(n))
}

// Player returns the generator for the seat called id.
func (s Source) Player(id string) *mrand.Rand {
	return s.stream("take5|player|" + id)
}

// Fingerprint returns a short hex identifier of the master secret, safe to
// record in place of the phrase.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func (s Source) Fingerprint() string {
	sum := sha256.Sum256(s.master)
	return hex.EncodeToString(sum[:10])
}

func (s Source) stream(info string) *mrand.Rand {
	r := hkdf.New(sha256.New, s.master, nil, []byte(info))
	var key [keySize]byte
	// HKDF-SHA256 can expand up to 255*32 bytes; 32 never fails.
	_, _ = io.ReadFull(r, key[:])
	return mrand.New(mrand.NewChaCha8(key))
}
