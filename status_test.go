package cotask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		None:       "None",
		Done:       "Done",
		Cont:       "Cont",
		Yield:      "Yield",
		Status(99): "Status(99)",
	}
	for status, want := range cases {
		require.Equal(t, want, status.String())
	}
}

func TestFinallyIsNotAValidToken(t *testing.T) {
	require.Equal(t, Token(-1), Finally)
}
