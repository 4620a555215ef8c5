package jsonresponse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/ignite/jsonresponse/internal/pkg/httputil"
)

const (
	ContentTypeJSON  = "application/json"
	ContentTypeJSONP = "application/javascript"

	charset = "; charset=UTF-8"
)

// Encoder renders payloads to JSON or JSONP responses.
type Encoder struct {
	// DefaultCallback names the JSONP function when the request has no
	// callback parameter.
	DefaultCallback string
	// Indent is the number of spaces per level in debug output.
	Indent int
}

// Options derives the render options for r.
func (e Encoder) Options(r *http.Request) RenderOptions {
	return ParseOptions(r.URL.Query(), e.DefaultCallback)
}

// Render encodes payload according to the query parameters of r.
func (e Encoder) Render(r *http.Request, payload any, status int) (httputil.Response, error) {
	return e.RenderWith(e.Options(r), payload, status)
}

// RenderWith encodes payload according to opts.
func (e Encoder) RenderWith(opts RenderOptions, payload any, status int) (httputil.Response, error) {
	body, err := e.encode(payload, opts.Debug)
	if err != nil {
		return httputil.Response{}, err
	}

	contentType := ContentTypeJSON
	if opts.JSONP() {
		wrapped := make([]byte, 0, len(opts.CallbackName)+len(body)+3)
		wrapped = append(wrapped, opts.CallbackName...)
		wrapped = append(wrapped, '(')
		wrapped = append(wrapped, body...)
		wrapped = append(wrapped, ");"...)
		body = wrapped
		contentType = ContentTypeJSONP
	}
	return httputil.NewResponse(body, contentType+charset, status), nil
}

func (e Encoder) encode(payload any, debug bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if debug {
		indent := e.Indent
		if indent <= 0 {
			indent = 4
		}
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if debug {
		return out, nil
	}
	return escapeNonASCII(out), nil
}

// escapeNonASCII rewrites every non-ASCII rune as a \uXXXX escape, using a
// surrogate pair outside the BMP. Valid JSON only has non-ASCII inside
// strings, so the rewrite never changes the decoded value.
func escapeNonASCII(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] < utf8.RuneSelf {
		i++
	}
	if i == len(b) {
		return b
	}

	out := make([]byte, 0, len(b)+16)
	out = append(out, b[:i]...)
	for i < len(b) {
		if b[i] < utf8.RuneSelf {
			out = append(out, b[i])
			i++
			continue
		}
		r, size := utf8.DecodeRune(b[i:])
		i += size
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			out = fmt.Appendf(out, `\u%04x\u%04x`, r1, r2)
			continue
		}
		out = fmt.Appendf(out, `\u%04x`, r)
	}
	return out
}
