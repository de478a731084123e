package client

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsh2dsh/actionlog"
)

func TestMetaAttrs(t *testing.T) {
	tests := []struct {
		name    string
		pairs   []string
		want    []slog.Attr
		wantErr bool
	}{
		{name: "empty", want: []slog.Attr{}},
		{
			name:  "pairs",
			pairs: []string{"job=deploy", "region=eu-west-1"},
			want: []slog.Attr{
				slog.String("job", "deploy"),
				slog.String("region", "eu-west-1"),
			},
		},
		{
			name:  "empty value",
			pairs: []string{"job="},
			want:  []slog.Attr{slog.String("job", "")},
		},
		{
			name:  "value contains equals",
			pairs: []string{"expr=a=b"},
			want:  []slog.Attr{slog.String("expr", "a=b")},
		},
		{name: "no equals", pairs: []string{"job"}, wantErr: true},
		{name: "empty key", pairs: []string{"=v"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := metaAttrs(tt.pairs)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, attrs)
		})
	}
}

func newTestHandler(level slog.Level) (*actionlog.Handler,
	*actionlog.MemorySink,
) {
	sink := actionlog.NewMemorySink()
	h := actionlog.New(
		actionlog.WithSink(sink),
		actionlog.WithLevel(level))
	return h, sink
}

func TestRunLogCmd(t *testing.T) {
	logArgs.level = "warning"
	logArgs.meta = []string{"job=ci"}
	t.Cleanup(func() { logArgs.level = "info"; logArgs.meta = nil })

	h, sink := newTestHandler(actionlog.LevelInfo)
	require.NoError(t,
		runLogCmd(context.Background(), h, []string{"disk", "almost", "full"}))

	lines := sink.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "::warning "), lines[0])
	assert.True(t, strings.HasSuffix(lines[0], "::disk almost full"), lines[0])
	assert.Contains(t, lines[0], "job=ci")
	assert.Contains(t, lines[0], "file=")
	assert.Contains(t, lines[0], "line=")
}

func TestRunLogCmd_belowThreshold(t *testing.T) {
	logArgs.level = "debug"
	logArgs.meta = nil
	t.Cleanup(func() { logArgs.level = "info" })

	h, sink := newTestHandler(actionlog.LevelInfo)
	require.NoError(t, runLogCmd(context.Background(), h, []string{"quiet"}))
	assert.Empty(t, sink.Lines())
}

func TestRunLogCmd_badLevel(t *testing.T) {
	logArgs.level = "loud"
	t.Cleanup(func() { logArgs.level = "info" })

	h, sink := newTestHandler(actionlog.LevelInfo)
	require.Error(t, runLogCmd(context.Background(), h, []string{"m"}))
	assert.Empty(t, sink.Lines())
}

func TestRunRunCmd(t *testing.T) {
	h, sink := newTestHandler(actionlog.LevelInfo)
	require.NoError(t,
		runRunCmd(context.Background(), h, []string{"true"}))

	lines := sink.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "::stop-commands::"), lines[0])
	token := strings.TrimPrefix(lines[0], "::stop-commands::")
	assert.Equal(t, "::"+token+"::", lines[1])
}

func TestRunRunCmd_failure(t *testing.T) {
	h, sink := newTestHandler(actionlog.LevelInfo)
	require.Error(t, runRunCmd(context.Background(), h, []string{"false"}))

	// The resume marker still pairs with the opening marker.
	lines := sink.Lines()
	require.Len(t, lines, 2)
	token := strings.TrimPrefix(lines[0], "::stop-commands::")
	assert.Equal(t, "::"+token+"::", lines[1])
}
