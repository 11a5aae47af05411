package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"1", true},
		{"True", true},
		{" true ", true},
		{"yes", true},
		{"ON", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, isTruthy(tt.input))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults to colored, quiet output", func(t *testing.T) {
		Reset()
		t.Cleanup(Reset)

		require.NoError(t, Load(nil))

		assert.False(t, IsPlain())
		assert.False(t, IsDebug())
	})

	t.Run("reads environment variables", func(t *testing.T) {
		Reset()
		t.Cleanup(Reset)
		t.Setenv("TICKETGUARD_PLAIN", "true")
		t.Setenv("TICKETGUARD_DEBUG", "1")

		require.NoError(t, Load(nil))

		assert.True(t, IsPlain())
		assert.True(t, IsDebug())
	})

	t.Run("ignores falsy environment values", func(t *testing.T) {
		Reset()
		t.Cleanup(Reset)
		t.Setenv("TICKETGUARD_DEBUG", "off")

		require.NoError(t, Load(nil))

		assert.False(t, IsDebug())
	})

	t.Run("reads changed flags", func(t *testing.T) {
		Reset()
		t.Cleanup(Reset)

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Bool("plain", false, "")
		flags.Bool("debug", false, "")
		require.NoError(t, flags.Parse([]string{"--debug"}))

		require.NoError(t, Load(flags))

		assert.True(t, IsDebug())
		assert.False(t, IsPlain())
	})

	t.Run("unchanged flags do not mask the environment", func(t *testing.T) {
		Reset()
		t.Cleanup(Reset)
		t.Setenv("TICKETGUARD_PLAIN", "yes")

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Bool("plain", false, "")
		require.NoError(t, flags.Parse(nil))

		require.NoError(t, Load(flags))

		assert.True(t, IsPlain())
	})
}
