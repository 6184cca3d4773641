package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum_DeterministicAndSensitiveToInput(t *testing.T) {
	a := []byte("closed-block-bytes")
	b := []byte("closed-block-bytex")

	require.Equal(t, Sum(a), Sum(a))
	require.NotEqual(t, Sum(a), Sum(b))
}

func TestVerify(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	sum := Sum(data)

	require.True(t, Verify(data, sum))
	require.False(t, Verify(data, sum+1))
}
