package xbytes

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func quickCheck(t *testing.T, property any) {
	t.Helper()

	if err := quick.Check(property, &quick.Config{MaxCount: 500}); err != nil {
		t.Error(err)
	}
}

// requireContractPanic runs f and asserts it panics with a *ContractError
// for op.
func requireContractPanic(t *testing.T, op string, f func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		require.NotNil(t, r, "expected %s to panic", op)

		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		require.ErrorIs(t, err, ErrContractViolation)

		var ce *ContractError
		require.True(t, errors.As(err, &ce))
		require.Equal(t, "xbytes", ce.Component)
		require.Equal(t, op, ce.Op)
	}()

	f()
}
