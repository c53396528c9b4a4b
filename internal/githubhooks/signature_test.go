package githubhooks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeSignatureKnownVector(t *testing.T) {
	// HMAC-SHA256("It's a Secret to Everybody", "Hello, World!") from the GitHub docs
	got := ComputeSignature("It's a Secret to Everybody", []byte("Hello, World!"))
	require.Equal(t, "sha256=757107ea0eb2509fc211221cce984b8a37570b6d7586c22c46f4379c8b043e17", got)
}

func TestVerifySignatureRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		secret := randomString(rng, 1+rng.Intn(32))
		body := make([]byte, rng.Intn(256))
		rng.Read(body)

		header := ComputeSignature(secret, body)
		require.True(t, VerifySignature(secret, body, header))
	}
}

func TestVerifySignatureRejectsBodyFlips(t *testing.T) {
	secret := "s3cret"
	body := []byte(`{"ref":"refs/heads/main","after":"abc","commits":[]}`)
	header := ComputeSignature(secret, body)

	for i := range body {
		flipped := append([]byte(nil), body...)
		flipped[i] ^= 0x01
		require.False(t, VerifySignature(secret, flipped, header), "body byte %d", i)
	}
}

func TestVerifySignatureRejectsHeaderFlips(t *testing.T) {
	secret := "s3cret"
	body := []byte(`{"ref":"refs/heads/main"}`)
	header := ComputeSignature(secret, body)

	for i := range header {
		flipped := []byte(header)
		flipped[i] ^= 0x01
		require.False(t, VerifySignature(secret, body, string(flipped)), "header byte %d", i)
	}
}

func TestVerifySignatureFailsClosed(t *testing.T) {
	body := []byte("payload")
	valid := ComputeSignature("secret", body)

	cases := map[string]struct {
		secret string
		header string
	}{
		"empty secret":   {"", ComputeSignature("", body)},
		"empty header":   {"secret", ""},
		"sha1 tag":       {"secret", "sha1=" + valid[len(signaturePrefix):]},
		"no digest":      {"secret", signaturePrefix},
		"short digest":   {"secret", valid[:len(valid)-2]},
		"not hex":        {"secret", signaturePrefix + string(make([]byte, 64))},
		"uppercase hex":  {"secret", "sha256=" + upper(valid[len(signaturePrefix):])},
		"wrong secret":   {"other", valid},
		"missing prefix": {"secret", valid[len(signaturePrefix):]},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.False(t, VerifySignature(tc.secret, body, tc.header))
		})
	}
}

func TestCheckSignatureHeader(t *testing.T) {
	require.NoError(t, checkSignatureHeader(ComputeSignature("k", nil)))
	require.ErrorIs(t, checkSignatureHeader("sha256=zz"), ErrSignatureMalformed)
	require.ErrorIs(t, checkSignatureHeader("md5=abc"), ErrSignatureMalformed)
}

func randomString(rng *rand.Rand, n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
