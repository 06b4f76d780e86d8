package stderr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestForward_LogsNonBlankLines(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	forward(strings.NewReader("ALSA lib pcm.c: underrun\n\n   \n  second line  \n"), logger)

	out := buf.String()
	if !strings.Contains(out, "ALSA lib pcm.c: underrun") {
		t.Errorf("output missing first line: %q", out)
	}
	if !strings.Contains(out, "second line") {
		t.Errorf("output missing second line: %q", out)
	}
	if got := strings.Count(out, "source=stderr"); got != 2 {
		t.Errorf("logged %d lines, want 2: %q", got, out)
	}
}
