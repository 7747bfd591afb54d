// Package digest implements the GA4GH computed-identifier algorithm:
// canonical serialization of a VRS object's digest-contributing fields,
// followed by a truncated, base64url-encoded SHA-512 digest
// (sha512t24u) and the `ga4gh:<prefix>.<digest>` identifier form.
//
// No third-party canonical-JSON library appears anywhere in the
// example pack, so the encoder below is hand-rolled per the three
// rules that matter: lexicographic key order, integer-only numerics,
// and UTF-8 strings with minimal escaping.
package digest

import (
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"

	"github.com/ga4gh/vrs-go/internal/vrserr"
)

const truncatedDigestSize = 24

// Value is a canonical JSON value tree: only these Go types are
// permitted as values -- nil, bool, int64, string, []Value and
// map[string]Value. Floats never appear; VRS coordinates and lengths
// are always integers.
type Value any

// Digestible is implemented by every independently identifiable VRS
// entity (Allele, CopyNumberCount, CopyNumberChange, SequenceLocation,
// SequenceReference).
type Digestible interface {
	// CanonicalValue returns the digest-contributing content tree:
	// the type discriminant plus the type's allow-listed intrinsic
	// fields, with identifiable children already collapsed to their
	// ga4gh identifier string, whether they are inlined or referenced.
	CanonicalValue() (Value, error)
	// TypePrefix returns the CURIE type prefix, e.g. "VA" for Allele.
	TypePrefix() string
}

// SHA512t24u computes the sha512t24u digest of blob: SHA-512, truncate
// to 24 bytes, base64url-encode without padding.
func SHA512t24u(blob []byte) string {
	sum := sha512.Sum512(blob)
	return base64.RawURLEncoding.EncodeToString(sum[:truncatedDigestSize])
}

// Identifier composes a ga4gh CURIE from a type prefix and digest.
func Identifier(prefix, dig string) string {
	return fmt.Sprintf("ga4gh:%s.%s", prefix, dig)
}

// Serialize renders v as canonical JSON bytes.
func Serialize(v Value) ([]byte, error) {
	var b strings.Builder
	if err := writeValue(&b, v); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// Digest returns the sha512t24u digest of o's canonical content.
func Digest(o Digestible) (string, error) {
	v, err := o.CanonicalValue()
	if err != nil {
		return "", err
	}
	blob, err := Serialize(v)
	if err != nil {
		return "", err
	}
	return SHA512t24u(blob), nil
}

// Identify returns o's full ga4gh: identifier.
func Identify(o Digestible) (string, error) {
	d, err := Digest(o)
	if err != nil {
		return "", err
	}
	return Identifier(o.TypePrefix(), d), nil
}

func writeValue(b *strings.Builder, v Value) error {
	switch t := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		if t {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case int:
		fmt.Fprintf(b, "%d", t)
	case int64:
		fmt.Fprintf(b, "%d", t)
	case string:
		writeString(b, t)
	case []Value:
		return writeArray(b, t)
	case map[string]Value:
		return writeObject(b, t)
	default:
		return &vrserr.SerializationError{Reason: fmt.Sprintf("unsupported canonical value type %T", v)}
	}
	return nil
}

func writeArray(b *strings.Builder, vals []Value) error {
	b.WriteByte('[')
	for i, e := range vals {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeValue(b, e); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

func writeObject(b *strings.Builder, obj map[string]Value) error {
	keys := make([]string, 0, len(obj))
	for k, val := range obj {
		if val == nil {
			// absent/null fields are omitted, never serialized
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		writeString(b, k)
		b.WriteByte(':')
		if err := writeValue(b, obj[k]); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
