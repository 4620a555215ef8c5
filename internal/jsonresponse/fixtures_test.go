package jsonresponse

import (
	"net/http"
	"net/http/httptest"
	"net/url"
)

type user struct {
	name string
	age  int
}

func (u user) Serialize(r *http.Request) (any, error) {
	if r.URL.Query().Get("with_age") != "" {
		return map[string]any{"name": u.name, "age": u.age}, nil
	}
	return map[string]any{"name": u.name}, nil
}

type brokenUser struct{}

func (brokenUser) Serialize(*http.Request) (any, error) {
	return nil, NewError("SerializeError", "cannot serialize").In("users")
}

type quotaUser struct{ limit int }

func (u quotaUser) Serialize(*http.Request) (any, error) {
	return nil, &quotaError{limit: u.limit}
}

func newRequest(path string, params map[string]string) *http.Request {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	target := path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	return httptest.NewRequest(http.MethodGet, target, nil)
}
