package jsonresponse

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"strings"
)

// ErrNotSerializable matches, under errors.Is, the error returned when an
// objects-mode result, or one of its elements, does not implement
// Serializable.
var ErrNotSerializable = NewError("NotSerializable", "value does not implement Serializable").In("jsonresponse")

func notSerializable(v any) *Error {
	return NewError(ErrNotSerializable.Type, fmt.Sprintf("%T does not implement Serializable", v)).In(ErrNotSerializable.Module)
}

// ErrorDescriptor names an error for the failure envelope.
type ErrorDescriptor struct {
	Qualifiers []string
	TypeName   string
	Message    string
}

// Class joins the non-empty qualifiers and the type name with dots,
// e.g. "users.User.NotFound".
func (d ErrorDescriptor) Class() string {
	parts := make([]string, 0, len(d.Qualifiers)+1)
	for _, q := range d.Qualifiers {
		if q != "" {
			parts = append(parts, q)
		}
	}
	if d.TypeName != "" {
		parts = append(parts, d.TypeName)
	}
	return strings.Join(parts, ".")
}

// Describer is implemented by errors that know their own classification.
type Describer interface {
	Describe() ErrorDescriptor
}

// Owned is implemented by errors raised on behalf of another type.
type Owned interface {
	Owner() string
}

// Error is an error that carries an explicit classification, built at the
// site that raises it.
type Error struct {
	Module string
	Owner  string
	Type   string
	Msg    string
	Err    error
}

// NewError creates an Error of the given type name.
func NewError(typeName, msg string) *Error {
	return &Error{Type: typeName, Msg: msg}
}

// In sets the module qualifier.
func (e *Error) In(module string) *Error {
	e.Module = module
	return e
}

// OwnedBy sets the owner qualifier.
func (e *Error) OwnedBy(owner string) *Error {
	e.Owner = owner
	return e
}

// Wrap records cause as the underlying error.
func (e *Error) Wrap(cause error) *Error {
	e.Err = cause
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		if e.Msg == "" {
			return e.Err.Error()
		}
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches any Error with the same classification, so errors.Is works
// against sentinels such as ErrNotSerializable whatever the message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Module == t.Module && e.Owner == t.Owner && e.Type == t.Type
}

func (e *Error) Describe() ErrorDescriptor {
	if e == nil {
		return ErrorDescriptor{}
	}
	return ErrorDescriptor{
		Qualifiers: []string{e.Module, e.Owner},
		TypeName:   e.Type,
		Message:    e.Error(),
	}
}

// Describe classifies err. An explicit Describer anywhere in the chain
// supplies the qualifiers and type; otherwise the concrete type of err is
// used: its package name, its Owner() if any, and its type name. Message is
// always err.Error() of the outermost error. A typed-nil Describer is
// classified by its type like any other error.
func Describe(err error) ErrorDescriptor {
	var d Describer
	if errors.As(err, &d) && !isNil(d) {
		desc := d.Describe()
		desc.Message = err.Error()
		return desc
	}

	desc := ErrorDescriptor{Message: err.Error()}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if pkg := t.PkgPath(); pkg != "" {
		desc.Qualifiers = append(desc.Qualifiers, path.Base(pkg))
	}
	if o, ok := err.(Owned); ok {
		desc.Qualifiers = append(desc.Qualifiers, o.Owner())
	}
	desc.TypeName = t.Name()
	if desc.TypeName == "" {
		desc.TypeName = t.String()
	}
	return desc
}
