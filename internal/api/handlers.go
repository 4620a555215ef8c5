package api

import (
	"net/http"

	"github.com/ignite/jsonresponse/internal/jsonresponse"
)

// HandleHello is rendered as-is, without an envelope.
//
//	GET /hello
func HandleHello(r *http.Request) (any, error) {
	return map[string]string{"hello": "world"}, nil
}

// HandleGoodbye returns plain data for the api envelope.
//
//	GET /goodbye
func HandleGoodbye(r *http.Request) (any, error) {
	return map[string]string{"good": "bye"}, nil
}

// HandleError always fails; the renderer turns it into an err=1 envelope.
//
//	GET /error
func HandleError(r *http.Request) (any, error) {
	return nil, jsonresponse.NewError("Exception", "Wooot!??")
}
