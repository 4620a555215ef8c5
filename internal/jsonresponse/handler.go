package jsonresponse

import (
	"fmt"
	"net/http"

	"github.com/ignite/jsonresponse/internal/pkg/httputil"
	"github.com/ignite/jsonresponse/internal/pkg/logger"
)

// HandlerFunc computes the result of a request. Route parameters and other
// extra arguments travel on the request (URL params, context values).
type HandlerFunc func(r *http.Request) (any, error)

// ErrorHandler renders an error that escaped the renderer.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Renderer wraps handlers into JSON/JSONP endpoints. It holds only
// configuration and is safe for concurrent use.
type Renderer struct {
	Encoder Encoder
	// AllowRaise lets ?raise=1 bypass the error envelope.
	AllowRaise bool
	// OnError handles propagated errors; nil means httputil.InternalError.
	OnError ErrorHandler
	Log     *logger.Logger
}

// New returns a Renderer with the default callback name, 4-space debug
// indent and raise=1 honoured.
func New() *Renderer {
	return &Renderer{
		Encoder:    Encoder{DefaultCallback: DefaultCallback, Indent: 4},
		AllowRaise: true,
		Log:        logger.Default(),
	}
}

// Call runs h and renders its outcome for mode. A returned error was not
// recovered and belongs to the caller: any failure in Plain mode, or a
// failure in API/Objects mode when raising was requested.
func (rd *Renderer) Call(r *http.Request, mode Mode, h HandlerFunc) (httputil.Response, error) {
	opts := rd.Encoder.Options(r)
	if !rd.AllowRaise {
		opts.RaiseOnError = false
	}

	if !mode.enveloped() {
		result, err := h(r)
		if err != nil {
			return httputil.Response{}, err
		}
		return rd.Encoder.RenderWith(opts, result, http.StatusOK)
	}

	resp, err := rd.envelope(r, opts, mode, h)
	if err == nil {
		return resp, nil
	}
	if opts.RaiseOnError {
		return httputil.Response{}, err
	}

	failure := Failed(err)
	rd.log().Warn("handler failed", "mode", mode, "path", r.URL.Path, "err_class", failure.Class, "err", err)
	return rd.Encoder.RenderWith(opts, failure, http.StatusInternalServerError)
}

// envelope covers invocation, expansion and encoding with one failure scope.
func (rd *Renderer) envelope(r *http.Request, opts RenderOptions, mode Mode, h HandlerFunc) (httputil.Response, error) {
	result, err := h(r)
	if err != nil {
		return httputil.Response{}, err
	}
	env, err := Normalize(mode, r, result)
	if err != nil {
		return httputil.Response{}, err
	}
	return rd.Encoder.RenderWith(opts, env, http.StatusOK)
}

// Wrap returns an http.Handler rendering h in the given mode. The mode is
// fixed here; an unknown mode panics at registration.
func (rd *Renderer) Wrap(mode Mode, h HandlerFunc) http.Handler {
	if !mode.Valid() {
		panic(fmt.Sprintf("jsonresponse: invalid mode %d", int(mode)))
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, err := rd.Call(r, mode, h)
		if err != nil {
			rd.log().Error("handler error propagated", "mode", mode, "path", r.URL.Path, "err", err)
			rd.onError()(w, r, err)
			return
		}
		httputil.Write(w, resp)
	})
}

// Plain wraps h in Plain mode.
func (rd *Renderer) Plain(h HandlerFunc) http.Handler { return rd.Wrap(Plain, h) }

// API wraps h in API mode.
func (rd *Renderer) API(h HandlerFunc) http.Handler { return rd.Wrap(API, h) }

// Objects wraps h in Objects mode.
func (rd *Renderer) Objects(h HandlerFunc) http.Handler { return rd.Wrap(Objects, h) }

func (rd *Renderer) onError() ErrorHandler {
	if rd.OnError != nil {
		return rd.OnError
	}
	return httputil.InternalError
}

func (rd *Renderer) log() *logger.Logger {
	if rd.Log != nil {
		return rd.Log
	}
	return logger.Default()
}
