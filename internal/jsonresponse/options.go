package jsonresponse

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names recognised on every wrapped route.
const (
	ParamDebug    = "debug"
	ParamDecode   = "decode" // legacy alias for debug
	ParamFormat   = "format"
	ParamCallback = "callback"
	ParamRaise    = "raise"
)

const (
	FormatJSON  = "json"
	FormatJSONP = "jsonp"

	DefaultCallback = "callback"
)

// RenderOptions are the per-request formatting flags.
type RenderOptions struct {
	Debug        bool
	Format       string
	CallbackName string
	RaiseOnError bool
}

// JSONP reports whether the body is wrapped in a callback invocation.
func (o RenderOptions) JSONP() bool {
	return o.Format == FormatJSONP
}

// ParseOptions derives RenderOptions from query parameters; a repeated
// parameter takes its last value. defaultCallback is used when the request
// carries no callback; an empty value means DefaultCallback.
func ParseOptions(q url.Values, defaultCallback string) RenderOptions {
	if defaultCallback == "" {
		defaultCallback = DefaultCallback
	}
	opts := RenderOptions{
		Debug:        truthy(q, ParamDebug) || truthy(q, ParamDecode),
		Format:       FormatJSON,
		CallbackName: defaultCallback,
		RaiseOnError: raiseRequested(q),
	}
	if v, ok := last(q, ParamFormat); ok {
		opts.Format = v
	}
	if v, ok := last(q, ParamCallback); ok {
		opts.CallbackName = v
	}
	return opts
}

// last returns the final value of a repeated parameter.
func last(q url.Values, key string) (string, bool) {
	vs := q[key]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

func truthy(q url.Values, key string) bool {
	v, _ := last(q, key)
	switch strings.ToLower(v) {
	case "true", "t", "1", "on":
		return true
	}
	return false
}

// raise is an integer flag; anything that is not a non-zero integer is off.
func raiseRequested(q url.Values) bool {
	v, _ := last(q, ParamRaise)
	n, err := strconv.Atoi(strings.TrimSpace(v))
	return err == nil && n != 0
}
