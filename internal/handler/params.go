package handler

import (
	"fmt"
	"math"

	apperrors "discord-mcp/pkg/errors"

	"github.com/mark3labs/mcp-go/mcp"
)

// Window bounds and defaults for the read and reply tools.
const (
	DefaultReadLimit   = 50
	MaxReadLimit       = 100
	DefaultContextSize = 25
	MaxContextSize     = 50
)

type sendParams struct {
	server  string
	channel string
	message string
}

type readParams struct {
	server  string
	channel string
	limit   int
}

type replyParams struct {
	server      string
	channel     string
	message     string
	contextSize int
}

// argReader collects every violation of one tool call so the caller gets a
// single aggregated validation error instead of the first failure.
type argReader struct {
	args       map[string]any
	violations []string
}

func newArgReader(request mcp.CallToolRequest) *argReader {
	return &argReader{args: request.GetArguments()}
}

func (r *argReader) violation(field, reason string) {
	r.violations = append(r.violations, field+": "+reason)
}

func (r *argReader) requiredString(field string) string {
	raw, ok := r.args[field]
	if !ok {
		r.violation(field, "required")
		return ""
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		r.violation(field, "must be a non-empty string")
		return ""
	}
	return value
}

func (r *argReader) optionalString(field string) string {
	raw, ok := r.args[field]
	if !ok {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		r.violation(field, "must be a string")
		return ""
	}
	return value
}

func (r *argReader) boundedInt(field string, def, min, max int) int {
	raw, ok := r.args[field]
	if !ok {
		return def
	}
	// JSON numbers arrive as float64.
	value, ok := raw.(float64)
	if !ok || value != math.Trunc(value) || int(value) < min || int(value) > max {
		r.violation(field, fmt.Sprintf("must be an integer between %d and %d", min, max))
		return def
	}
	return int(value)
}

func (r *argReader) err() *apperrors.ValidationError {
	if len(r.violations) == 0 {
		return nil
	}
	return apperrors.NewValidationFailed(r.violations)
}

func parseSendParams(request mcp.CallToolRequest) (sendParams, *apperrors.ValidationError) {
	r := newArgReader(request)
	params := sendParams{
		server:  r.optionalString("server"),
		channel: r.requiredString("channel"),
		message: r.requiredString("message"),
	}
	return params, r.err()
}

func parseReadParams(request mcp.CallToolRequest) (readParams, *apperrors.ValidationError) {
	r := newArgReader(request)
	params := readParams{
		server:  r.optionalString("server"),
		channel: r.requiredString("channel"),
		limit:   r.boundedInt("limit", DefaultReadLimit, 1, MaxReadLimit),
	}
	return params, r.err()
}

func parseReplyParams(request mcp.CallToolRequest) (replyParams, *apperrors.ValidationError) {
	r := newArgReader(request)
	params := replyParams{
		server:      r.optionalString("server"),
		channel:     r.requiredString("channel"),
		message:     r.requiredString("message"),
		contextSize: r.boundedInt("contextSize", DefaultContextSize, 1, MaxContextSize),
	}
	return params, r.err()
}
