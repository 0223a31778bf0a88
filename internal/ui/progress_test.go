package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar_CompletesWithFinalCounts(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(2, &buf)

	bar.Update(1, 0)
	bar.Update(1, 1)
	bar.Finish()

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"), "bar line must be terminated once complete")

	body := strings.TrimSuffix(out, "\n")
	assert.NotContains(t, body, "\n")
	last := body[strings.LastIndex(body, "\r")+1:]
	assert.Contains(t, last, "pass: 1")
	assert.Contains(t, last, "fail: 1]")
}
