package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReadParams_Defaults(t *testing.T) {
	params, verr := parseReadParams(callRequest(map[string]any{
		"channel": "general",
	}))
	require.Nil(t, verr)
	assert.Equal(t, DefaultReadLimit, params.limit)
	assert.Empty(t, params.server)
}

func TestParseReadParams_NonIntegerLimit(t *testing.T) {
	_, verr := parseReadParams(callRequest(map[string]any{
		"channel": "general",
		"limit":   12.5,
	}))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Diagnostic(), "limit: must be an integer between 1 and 100")
}

func TestParseReadParams_WrongTypes(t *testing.T) {
	_, verr := parseReadParams(callRequest(map[string]any{
		"channel": 42,
		"server":  true,
		"limit":   "10",
	}))
	require.NotNil(t, verr)

	diag := verr.Diagnostic()
	assert.Contains(t, diag, "channel: must be a non-empty string")
	assert.Contains(t, diag, "server: must be a string")
	assert.Contains(t, diag, "limit: must be an integer between 1 and 100")
}

func TestParseReplyParams_Defaults(t *testing.T) {
	params, verr := parseReplyParams(callRequest(map[string]any{
		"channel": "#general",
		"message": "hi",
	}))
	require.Nil(t, verr)
	assert.Equal(t, DefaultContextSize, params.contextSize)
	assert.Equal(t, "#general", params.channel)
}

func TestParseSendParams_EmptyStringsRejected(t *testing.T) {
	_, verr := parseSendParams(callRequest(map[string]any{
		"channel": "",
		"message": "",
	}))
	require.NotNil(t, verr)
	assert.Contains(t, verr.Diagnostic(), "Invalid arguments: ")
	assert.Len(t, verr.Violations, 2)
}
