package nativeimage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]string{"-cp", "/a.jar", "--verbose"})
	assert.Len(t, a, 16)
	assert.Equal(t, a, Fingerprint([]string{"-cp", "/a.jar", "--verbose"}))

	assert.NotEqual(t, Fingerprint([]string{"ab", "c"}), Fingerprint([]string{"a", "bc"}))
	assert.NotEqual(t, a, Fingerprint([]string{"-cp", "/a.jar"}))
	assert.NotEqual(t, Fingerprint(nil), Fingerprint([]string{""}))
}

func TestFingerprint_SameConfigurationSameKey(t *testing.T) {
	cfg := minimalConfig()
	cfg.SystemProperties = map[string]string{"x": "1", "y": "2", "z": "3"}

	first, err := Build(cfg)
	require.NoError(t, err)
	second, err := Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, Fingerprint(first), Fingerprint(second))
}
