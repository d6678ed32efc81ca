package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/josephcopenhaver/go-exp-bytestr/internal/scratch"
	"github.com/josephcopenhaver/go-exp-bytestr/xbytes"
	"github.com/stretchr/testify/require"
)

func upper(_ *Scratch, rec []byte) ([]byte, error) {
	return xbytes.Uppercase(rec), nil
}

func TestScanRecords(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("a\n\nbc\nd"))
	sc.Split(ScanRecords('\n'))

	var got []string
	for sc.Scan() {
		got = append(got, sc.Text())
	}
	require.NoError(t, sc.Err())
	require.Equal(t, []string{"a", "", "bc", "d"}, got)
}

func TestScanRecordsNUL(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("a b\x00c\x00"))
	sc.Split(ScanRecords(0))

	var got []string
	for sc.Scan() {
		got = append(got, sc.Text())
	}
	require.Equal(t, []string{"a b", "c"}, got)
}

func TestNewRunnerValidation(t *testing.T) {
	op := RunnerOpts()

	_, err := NewRunner(op.Workers(0))
	require.ErrorContains(t, err, "invalid pipeline config")

	_, err = NewRunner(op.BatchSize(-1))
	require.Error(t, err)

	_, err = NewRunner()
	require.NoError(t, err)
}

func TestRunPreservesOrder(t *testing.T) {
	var in strings.Builder
	var want strings.Builder
	for i := range 1000 {
		fmt.Fprintf(&in, "line-%d\n", i)
		fmt.Fprintf(&want, "LINE-%d\n", i)
	}

	op := RunnerOpts()
	rn, err := NewRunner(op.Workers(8), op.BatchSize(37))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, rn.Run(t.Context(), strings.NewReader(in.String()), &out, upper))
	require.Equal(t, want.String(), out.String())
}

func TestRunUsesScratch(t *testing.T) {
	pool, err := scratch.NewPool(scratch.PoolOpts().MaxIdle(4))
	require.NoError(t, err)

	op := RunnerOpts()
	rn, err := NewRunner(op.Workers(2), op.Pool(pool), op.OutputDelimiter([]byte("|")))
	require.NoError(t, err)

	fn := func(s *Scratch, rec []byte) ([]byte, error) {
		s.Parts = xbytes.AppendSplitWithoutEmptyParts(s.Parts, rec, ',')
		return xbytes.Join(s.Parts, []byte("+")), nil
	}

	var out bytes.Buffer
	require.NoError(t, rn.Run(t.Context(), strings.NewReader("a,,b\n,c,\n"), &out, fn))
	require.Equal(t, "a+b|c|", out.String())
	require.Positive(t, pool.Idle())
}

func TestRunEmptyInput(t *testing.T) {
	rn, err := NewRunner()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, rn.Run(t.Context(), strings.NewReader(""), &out, upper))
	require.Empty(t, out.String())
}

func TestRunTransformError(t *testing.T) {
	errBoom := errors.New("boom")

	op := RunnerOpts()
	rn, err := NewRunner(op.Workers(4), op.BatchSize(2))
	require.NoError(t, err)

	fn := func(_ *Scratch, rec []byte) ([]byte, error) {
		if string(rec) == "bad" {
			return nil, errBoom
		}
		return rec, nil
	}

	var out bytes.Buffer
	err = rn.Run(t.Context(), strings.NewReader("ok\nfine\nok\nbad\nlater\n"), &out, fn)
	require.ErrorIs(t, err, errBoom)

	var recErr *RecordError
	require.ErrorAs(t, err, &recErr)
	require.Equal(t, 3, recErr.Index)
	require.Equal(t, "ok\nfine\n", out.String())
}

func TestRunCanceled(t *testing.T) {
	rn, err := NewRunner()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	var out bytes.Buffer
	err = rn.Run(ctx, strings.NewReader("a\nb\n"), &out, upper)
	require.ErrorIs(t, err, context.Canceled)
}
