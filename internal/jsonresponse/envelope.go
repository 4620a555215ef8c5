package jsonresponse

// Envelope is the uniform payload of api and objects mode responses.
// Failure is nil on success, which keeps err_class and err_desc out of the
// encoded body.
type Envelope struct {
	Err int `json:"err"`
	*Failure
	Data any `json:"data"`
}

// Failure carries the classification of a failed call.
type Failure struct {
	Class string `json:"err_class"`
	Desc  string `json:"err_desc"`
}

// Succeeded wraps data in a success envelope.
func Succeeded(data any) Envelope {
	return Envelope{Err: 0, Data: data}
}

// Failed builds the failure envelope for err.
func Failed(err error) Envelope {
	d := Describe(err)
	return Envelope{
		Err:     1,
		Failure: &Failure{Class: d.Class(), Desc: d.Message},
		Data:    nil,
	}
}

// OK reports whether the envelope describes a success.
func (e Envelope) OK() bool { return e.Err == 0 }
