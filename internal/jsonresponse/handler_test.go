package jsonresponse

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ignite/jsonresponse/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(buf *bytes.Buffer) *Renderer {
	rd := New()
	rd.Log = logger.New(buf, logger.DEBUG)
	return rd
}

func decodeEnvelope(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestCallAPISuccess(t *testing.T) {
	rd := newTestRenderer(&bytes.Buffer{})
	result := map[string]any{"good": "bye"}

	resp, err := rd.Call(newRequest("/goodbye", nil), API, func(*http.Request) (any, error) {
		return result, nil
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, map[string]any{"err": 0.0, "data": result}, decodeEnvelope(t, resp.Body))
}

func TestCallEnvelopesErrors(t *testing.T) {
	var logs bytes.Buffer
	rd := newTestRenderer(&logs)
	failing := func(*http.Request) (any, error) { return nil, errors.New("Wooot!??") }

	for _, mode := range []Mode{API, Objects} {
		t.Run(mode.String(), func(t *testing.T) {
			resp, err := rd.Call(newRequest("/error", nil), mode, failing)
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, resp.Status)
			assert.Equal(t, "application/json; charset=UTF-8", resp.ContentType)

			env := decodeEnvelope(t, resp.Body)
			assert.Equal(t, 1.0, env["err"])
			assert.Nil(t, env["data"])
			assert.Contains(t, env, "data")
			assert.Equal(t, "Wooot!??", env["err_desc"])
			assert.Equal(t, "errors.errorString", env["err_class"])
		})
	}
	assert.Contains(t, logs.String(), `"err_class":"errors.errorString"`)
}

func TestCallRaisePropagates(t *testing.T) {
	rd := newTestRenderer(&bytes.Buffer{})
	boom := errors.New("Wooot!??")

	_, err := rd.Call(newRequest("/error", map[string]string{"raise": "1", "debug": "1"}), API, func(*http.Request) (any, error) {
		return nil, boom
	})
	assert.Same(t, boom, err)
}

func TestCallRaiseDisabled(t *testing.T) {
	rd := newTestRenderer(&bytes.Buffer{})
	rd.AllowRaise = false

	resp, err := rd.Call(newRequest("/error", map[string]string{"raise": "1"}), API, func(*http.Request) (any, error) {
		return nil, errors.New("nope")
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
}

func TestCallPlain(t *testing.T) {
	rd := newTestRenderer(&bytes.Buffer{})

	resp, err := rd.Call(newRequest("/hello", nil), Plain, func(*http.Request) (any, error) {
		return map[string]string{"hello": "world"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, `{"hello":"world"}`, string(resp.Body))
	assert.Equal(t, http.StatusOK, resp.Status)

	boom := errors.New("boom")
	_, err = rd.Call(newRequest("/hello", nil), Plain, func(*http.Request) (any, error) {
		return nil, boom
	})
	assert.Same(t, boom, err)

	_, err = rd.Call(newRequest("/hello", nil), Plain, func(*http.Request) (any, error) {
		return make(chan int), nil
	})
	assert.Error(t, err)
}

func TestCallObjectsUsers(t *testing.T) {
	rd := newTestRenderer(&bytes.Buffer{})
	users := func(*http.Request) (any, error) {
		return []user{{"Bob", 10}, {"Anna", 12}}, nil
	}

	resp, err := rd.Call(newRequest("/users", nil), Objects, users)
	require.NoError(t, err)
	assert.Equal(t, `{"err":0,"data":[{"name":"Bob"},{"name":"Anna"}]}`, string(resp.Body))

	resp, err = rd.Call(newRequest("/users", map[string]string{"with_age": "1"}), Objects, users)
	require.NoError(t, err)
	assert.Equal(t, `{"err":0,"data":[{"age":10,"name":"Bob"},{"age":12,"name":"Anna"}]}`, string(resp.Body))
}

func TestCallObjectsSerializationFailure(t *testing.T) {
	rd := newTestRenderer(&bytes.Buffer{})
	h := func(*http.Request) (any, error) { return []Serializable{brokenUser{}}, nil }

	resp, err := rd.Call(newRequest("/users", nil), Objects, h)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.Status)
	env := decodeEnvelope(t, resp.Body)
	assert.Equal(t, "users.SerializeError", env["err_class"])
	assert.Equal(t, "cannot serialize", env["err_desc"])

	_, err = rd.Call(newRequest("/users", map[string]string{"raise": "1"}), Objects, h)
	assert.Error(t, err)
}

func TestCallFailureClassification(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		result    any
		err       error
		wantClass string
		wantDesc  string
	}{
		{
			name:      "handler error",
			mode:      Objects,
			err:       &quotaError{limit: 3},
			wantClass: "jsonresponse.quotaError",
			wantDesc:  "quota of 3 exceeded",
		},
		{
			name:      "single serializable fails",
			mode:      Objects,
			result:    quotaUser{limit: 3},
			wantClass: "jsonresponse.quotaError",
			wantDesc:  "quota of 3 exceeded",
		},
		{
			name:      "sequence element fails",
			mode:      Objects,
			result:    []Serializable{user{"Bob", 10}, quotaUser{limit: 3}},
			wantClass: "jsonresponse.quotaError",
			wantDesc:  "quota of 3 exceeded",
		},
		{
			name:      "result not serializable",
			mode:      Objects,
			result:    42,
			wantClass: "jsonresponse.NotSerializable",
			wantDesc:  "int does not implement Serializable",
		},
		{
			name:      "element not serializable",
			mode:      Objects,
			result:    []any{user{"Bob", 10}, "stray"},
			wantClass: "jsonresponse.NotSerializable",
			wantDesc:  "string does not implement Serializable",
		},
		{
			name:      "unencodable channel",
			mode:      API,
			result:    make(chan int),
			wantClass: "json.UnsupportedTypeError",
			wantDesc:  "json: unsupported type: chan int",
		},
		{
			name:      "unencodable NaN",
			mode:      API,
			result:    map[string]float64{"score": math.NaN()},
			wantClass: "json.UnsupportedValueError",
			wantDesc:  "json: unsupported value: NaN",
		},
		{
			name:      "typed nil explicit error",
			mode:      API,
			err:       (*Error)(nil),
			wantClass: "jsonresponse.Error",
			wantDesc:  "<nil>",
		},
	}

	rd := newTestRenderer(&bytes.Buffer{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := rd.Call(newRequest("/", nil), tt.mode, func(*http.Request) (any, error) {
				return tt.result, tt.err
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, resp.Status)
			assert.Equal(t, map[string]any{
				"err":       1.0,
				"err_class": tt.wantClass,
				"err_desc":  tt.wantDesc,
				"data":      nil,
			}, decodeEnvelope(t, resp.Body))
		})
	}
}

func TestWrap(t *testing.T) {
	rd := newTestRenderer(&bytes.Buffer{})
	h := rd.API(func(r *http.Request) (any, error) {
		return map[string]string{"good": "bye"}, nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, newRequest("/goodbye", map[string]string{"format": "jsonp", "callback": "cb"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/javascript; charset=UTF-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `cb({"err":0,"data":{"good":"bye"}});`, rec.Body.String())
}

func TestWrapPropagatesToErrorHandler(t *testing.T) {
	var logs bytes.Buffer
	rd := newTestRenderer(&logs)
	var got error
	rd.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	}
	boom := errors.New("boom")

	rec := httptest.NewRecorder()
	rd.Plain(func(*http.Request) (any, error) { return nil, boom }).ServeHTTP(rec, newRequest("/", nil))

	assert.Same(t, boom, got)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, logs.String(), "handler error propagated")
}

func TestWrapDefaultErrorHandler(t *testing.T) {
	rd := newTestRenderer(&bytes.Buffer{})

	rec := httptest.NewRecorder()
	rd.Objects(func(*http.Request) (any, error) {
		return nil, errors.New("secret detail")
	}).ServeHTTP(rec, newRequest("/", map[string]string{"raise": "1"}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret detail")
}

func TestWrapInvalidModePanics(t *testing.T) {
	rd := New()
	assert.Panics(t, func() {
		rd.Wrap(Mode(7), func(*http.Request) (any, error) { return nil, nil })
	})
}
