// Package jsonresponse turns handler results and errors into JSON or JSONP
// HTTP responses.
//
// A handler is wrapped once, at route registration, with one of three modes:
//
//   - Plain serializes the handler's value as-is and never recovers errors.
//   - API wraps the value in an envelope, {"err":0,"data":...}, and converts
//     errors to {"err":1,"err_class":...,"err_desc":...,"data":null} with
//     status 500.
//   - Objects behaves like API but first expands Serializable results.
//
// Per-request query parameters control formatting: debug (or the legacy
// decode) pretty-prints, format=jsonp with callback=name wraps the body in a
// function call, and raise=1 lets errors escape the envelope.
package jsonresponse
