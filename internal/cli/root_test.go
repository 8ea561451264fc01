package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_PassesOptionalPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no argument", args: nil, want: ""},
		{name: "one argument", args: []string{"/media/movie.mkv"}, want: "/media/movie.mkv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := "unset"
			cmd := NewRootCommand("1.0.0", func(_ context.Context, path string) error {
				got = path
				return nil
			})
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRootCommand_RejectsExtraArguments(t *testing.T) {
	called := false
	cmd := NewRootCommand("1.0.0", func(context.Context, string) error {
		called = true
		return nil
	})
	cmd.SetArgs([]string{"a.mp4", "b.mp4"})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
	assert.False(t, called)
}

func TestRootCommand_Version(t *testing.T) {
	cmd := NewRootCommand("1.2.3", func(context.Context, string) error {
		t.Fatal("run must not be called for --version")
		return nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "mediaplayer 1.2.3\n", out.String())
}

func TestRootCommand_PropagatesRunError(t *testing.T) {
	boom := errors.New("boom")
	cmd := NewRootCommand("dev", func(context.Context, string) error { return boom })
	cmd.SetArgs(nil)
	cmd.SetErr(&bytes.Buffer{})

	assert.ErrorIs(t, cmd.Execute(), boom)
}
