package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA512t24u(t *testing.T) {
	// Reference vectors from the GA4GH computed-identifier algorithm.
	assert.Equal(t, "z4PhNX7vuL3xVChQ1m2AB9Yg5AULVxXc", SHA512t24u([]byte{}))
	assert.Equal(t, "aKF498dAxcJAqme6QYQ7EZ07-fiw8Kw2", SHA512t24u([]byte("ACGT")))
}

func TestSerialize_KeyOrderIndependence(t *testing.T) {
	a := map[string]Value{"b": int64(1), "a": int64(2)}
	b := map[string]Value{"a": int64(2), "b": int64(1)}

	sa, err := Serialize(a)
	require.NoError(t, err)
	sb, err := Serialize(b)
	require.NoError(t, err)

	assert.Equal(t, sa, sb)
	assert.Equal(t, `{"a":2,"b":1}`, string(sa))
}

func TestSerialize_OmitsNullFields(t *testing.T) {
	v := map[string]Value{"a": int64(1), "b": nil}
	out, err := Serialize(v)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(out))
}

func TestSerialize_NestedArraysAndObjects(t *testing.T) {
	v := map[string]Value{
		"type": "Allele",
		"location": map[string]Value{
			"type":  "SequenceLocation",
			"start": int64(10),
			"end":   int64(20),
		},
		"members": []Value{"ga4gh:VA.one", "ga4gh:VA.two"},
	}
	out, err := Serialize(v)
	require.NoError(t, err)
	assert.Equal(t, `{"location":{"end":20,"start":10,"type":"SequenceLocation"},"members":["ga4gh:VA.one","ga4gh:VA.two"],"type":"Allele"}`, string(out))
}

type fakeDigestible struct {
	prefix string
	value  Value
}

func (f fakeDigestible) CanonicalValue() (Value, error) { return f.value, nil }
func (f fakeDigestible) TypePrefix() string              { return f.prefix }

func TestIdentify(t *testing.T) {
	d := fakeDigestible{prefix: "VA", value: map[string]Value{"type": "Allele"}}
	id, err := Identify(d)
	require.NoError(t, err)
	assert.Regexp(t, `^ga4gh:VA\.[0-9A-Za-z_-]{32}$`, id)

	id2, err := Identify(d)
	require.NoError(t, err)
	assert.Equal(t, id, id2, "identical content must digest identically")
}
