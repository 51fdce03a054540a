package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewEncodings(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		format   string
		contains []string
	}{
		{"", []string{"level=info", "name=m61", "msg=ladder", "scalar=5"}},
		{LOGFMT, []string{"level=info", "msg=ladder", "scalar=5"}},
		{JSON, []string{`"level":"info"`, `"msg":"ladder"`, `"scalar":5`}},
		{CONSOLE, []string{"info", "m61", "ladder", `"scalar": 5`}},
	} {
		tc := tc
		t.Run(tc.format, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			logger, err := New(Config{Format: tc.format, Writer: buf})
			require.NoError(t, err)
			logger.Info("ladder", zap.Uint64("scalar", 5))
			for _, s := range tc.contains {
				require.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestNewLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger, err := New(Config{Level: "WARN", Writer: buf})
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	_, err := New(Config{Level: "loud"})
	require.ErrorContains(t, err, `invalid logging level "loud"`)

	_, err = New(Config{Format: "xml"})
	require.ErrorContains(t, err, `unknown logging format "xml"`)
}
