package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ignite/jsonresponse/internal/jsonresponse"
)

// userNamespace seeds the name-based user IDs.
var userNamespace = uuid.MustParse("6f1c2b8e-3d4a-5e6f-8a9b-0c1d2e3f4a5b")

// User is a directory entry that serializes itself per request.
type User struct {
	ID   uuid.UUID
	Name string
	Age  int
}

// NewUser creates a User whose ID is derived from its name.
func NewUser(name string, age int) User {
	return User{ID: uuid.NewSHA1(userNamespace, []byte(strings.ToLower(name))), Name: name, Age: age}
}

// Serialize returns the name, plus age when ?with_age is set and id when
// ?with_id is set.
func (u User) Serialize(r *http.Request) (any, error) {
	q := r.URL.Query()
	out := map[string]any{"name": u.Name}
	if q.Get("with_age") != "" {
		out["age"] = u.Age
	}
	if q.Get("with_id") != "" {
		out["id"] = u.ID.String()
	}
	return out, nil
}

// DefaultUsers is the roster served by the example routes.
func DefaultUsers() []User {
	return []User{NewUser("Bob", 10), NewUser("Anna", 12)}
}

// UserDirectory serves a fixed, read-only list of users.
type UserDirectory struct {
	users []User
}

// NewUserDirectory creates a directory over users, in order.
func NewUserDirectory(users ...User) *UserDirectory {
	return &UserDirectory{users: users}
}

// HandleList returns every user.
//
//	GET /users
func (d *UserDirectory) HandleList(r *http.Request) (any, error) {
	return d.users, nil
}

// HandleGet returns one user by name (case-insensitive).
//
//	GET /users/{name}
func (d *UserDirectory) HandleGet(r *http.Request) (any, error) {
	name := chi.URLParam(r, "name")
	for _, u := range d.users {
		if strings.EqualFold(u.Name, name) {
			return u, nil
		}
	}
	return nil, jsonresponse.NewError("NotFound", "no user named "+name).In("api").OwnedBy("User")
}
