package crypto

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"maps"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

type Hash interface {
	// Name is the registry name, as accepted by HashFromString
	Name() string
	String() string
	Size() int
	New() hash.Hash
}

type hashFunc struct {
	name    string
	display string
	size    int
	newFunc func() hash.Hash
}

func (h *hashFunc) Name() string   { return h.name }
func (h *hashFunc) String() string { return h.display }
func (h *hashFunc) Size() int      { return h.size }
func (h *hashFunc) New() hash.Hash { return h.newFunc() }

var (
	MD5         Hash = &hashFunc{"md5", "MD5", md5.Size, md5.New}
	SHA1        Hash = &hashFunc{"sha1", "SHA-1", sha1.Size, sha1.New}
	SHA224      Hash = &hashFunc{"sha224", "SHA-224", sha256.Size224, sha256.New224}
	SHA256      Hash = &hashFunc{"sha256", "SHA-256", sha256.Size, sha256.New}
	SHA384      Hash = &hashFunc{"sha384", "SHA-384", sha512.Size384, sha512.New384}
	SHA512      Hash = &hashFunc{"sha512", "SHA-512", sha512.Size, sha512.New}
	SHA512_224  Hash = &hashFunc{"sha512_224", "SHA-512/224", sha512.Size224, sha512.New512_224}
	SHA512_256  Hash = &hashFunc{"sha512_256", "SHA-512/256", sha512.Size256, sha512.New512_256}
	SHA3_224    Hash = &hashFunc{"sha3_224", "SHA3-224", 28, func() hash.Hash { return sha3.New224() }}
	SHA3_256    Hash = &hashFunc{"sha3_256", "SHA3-256", 32, func() hash.Hash { return sha3.New256() }}
	SHA3_384    Hash = &hashFunc{"sha3_384", "SHA3-384", 48, func() hash.Hash { return sha3.New384() }}
	SHA3_512    Hash = &hashFunc{"sha3_512", "SHA3-512", 64, func() hash.Hash { return sha3.New512() }}
	BLAKE2s_256 Hash = &hashFunc{"blake2s256", "BLAKE2s-256", blake2s.Size, func() hash.Hash { h, _ := blake2s.New256(nil); return h }}
	BLAKE2b_256 Hash = &hashFunc{"blake2b256", "BLAKE2b-256", blake2b.Size256, func() hash.Hash { h, _ := blake2b.New256(nil); return h }}
	BLAKE2b_384 Hash = &hashFunc{"blake2b384", "BLAKE2b-384", blake2b.Size384, func() hash.Hash { h, _ := blake2b.New384(nil); return h }}
	BLAKE2b_512 Hash = &hashFunc{"blake2b512", "BLAKE2b-512", blake2b.Size, func() hash.Hash { h, _ := blake2b.New512(nil); return h }}
	Keccak256   Hash = &hashFunc{"keccak256", "Keccak256", 32, func() hash.Hash { return sha3.NewLegacyKeccak256() }} // Legacy
	Keccak512   Hash = &hashFunc{"keccak512", "Keccak512", 64, func() hash.Hash { return sha3.NewLegacyKeccak512() }} // Legacy
)

var hashes = func() map[string]Hash {
	out := make(map[string]Hash)
	for _, h := range []Hash{
		MD5, SHA1, SHA224, SHA256, SHA384, SHA512, SHA512_224, SHA512_256,
		SHA3_224, SHA3_256, SHA3_384, SHA3_512,
		BLAKE2s_256, BLAKE2b_256, BLAKE2b_384, BLAKE2b_512,
		Keccak256, Keccak512,
	} {
		out[h.Name()] = h
	}
	return out
}()

func normalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "_")
	return strings.ReplaceAll(name, "/", "_")
}

// HashFromString returns nil if the name is unknown. Names are case
// insensitive and accept both '-' and '_' as separators.
func HashFromString(name string) Hash {
	return hashes[normalizeName(name)]
}

// Hashes returns registered hash names in sorted order
func Hashes() []string {
	return slices.Sorted(maps.Keys(hashes))
}

// Sum hashes everything read from r.
func Sum(h Hash, r io.Reader) ([]byte, error) {
	hh := h.New()
	if _, err := io.Copy(hh, r); err != nil {
		return nil, fmt.Errorf("%s: %w", h, err)
	}
	return hh.Sum(nil), nil
}
