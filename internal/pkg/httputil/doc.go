// Package httputil provides the HTTP primitives the response renderer is built on.
//
// A Response is a fully rendered reply (body, content type, status) that can be
// written to any http.ResponseWriter. Errors that escape a handler are rendered
// by InternalError, which logs the real error and returns a generic JSON body.
package httputil
