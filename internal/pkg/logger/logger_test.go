package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetAfter(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })
}

func TestConfigure_LevelFiltersEvents(t *testing.T) {
	resetAfter(t)
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("quiet")
	Warn().Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, `"level":"warn"`)
}

func TestConfigure_UnknownLevelDefaultsToInfo(t *testing.T) {
	resetAfter(t)
	var buf bytes.Buffer
	Configure(Config{Level: LogLevel("verbose"), Output: &buf})

	Info().Msg("kept")

	assert.Contains(t, buf.String(), "kept")
}

func TestConfigure_PrettyUsesConsoleWriter(t *testing.T) {
	resetAfter(t)
	var buf bytes.Buffer
	Configure(Config{Level: InfoLevel, Pretty: true, Output: &buf})

	Info().Msg("console line")

	out := buf.String()
	assert.Contains(t, out, "console line")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"))
}
