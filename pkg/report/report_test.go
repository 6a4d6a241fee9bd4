package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluencelabs/perfmeter/pkg/db"
)

func TestGenerate(t *testing.T) {
	version := "0.35.1"
	data := map[string]*db.HostRecord{
		"h1": {
			Stats: map[string]interface{}{
				"parse":   map[string]interface{}{"mean_ms": 12.3, "runs": 3.0},
				"execute": map[string]interface{}{"mean_ms": 4567.8, "runs": 5.0},
			},
			Platform: "linux/amd64",
			Datetime: "2023-04-01T12:00:00Z",
			Version:  &version,
		},
		"h2": {
			Stats: map[string]interface{}{
				"parse": "not a stats map",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, data))

	out := buf.String()

	assert.Contains(t, out, "## h1")
	assert.Contains(t, out, "## h2")
	assert.Contains(t, out, "Platform: linux/amd64")
	assert.Contains(t, out, "Version: 0.35.1")
	assert.Contains(t, out, "| parse | 12.30ms | 3 |")
	assert.Contains(t, out, "| execute | 4.57s | 5 |")

	// Unknown stats shapes render as placeholders, not errors.
	assert.Contains(t, out, "| parse | - | - |")

	// Hosts are emitted in sorted order.
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("## h1")),
		bytes.Index(buf.Bytes(), []byte("## h2")))
}

func TestGenerateEmpty(t *testing.T) {
	var buf bytes.Buffer

	err := Generate(&buf, nil)
	assert.Error(t, err)
}
