package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTML_Markdown(t *testing.T) {
	out, err := New().HTML("## Qubits\n\nA **superposition** of states.\n\n- one\n- two\n")

	require.NoError(t, err)
	assert.Contains(t, out, "<h2")
	assert.Contains(t, out, "<strong>superposition</strong>")
	assert.Contains(t, out, "<li>one</li>")
}

func TestHTML_StripsScripts(t *testing.T) {
	out, err := New().HTML("Hello <script>alert(1)</script> [x](javascript:alert(1))")

	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
}

func TestHTML_ExternalLinks(t *testing.T) {
	out, err := New().HTML("[docs](https://example.com)")

	require.NoError(t, err)
	assert.Contains(t, out, "nofollow")
	assert.Contains(t, out, `target="_blank"`)
}

func TestHTML_Blank(t *testing.T) {
	out, err := New().HTML("  \n")

	require.NoError(t, err)
	assert.Empty(t, out)
}
