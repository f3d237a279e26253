// Package demo provides the small chi-based service the cliwire binary
// dispatches against. It doubles as the integration-test fixture: its routes
// exercise path parameters, query projection, JSON bodies, and the
// environment mapping.
package demo

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vk/cliwire/internal/dispatch"
)

// User is a demo record.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Admin bool   `json:"admin,omitempty"`
}

var users = map[string]User{
	"1": {ID: "1", Name: "ada"},
	"2": {ID: "2", Name: "grace", Admin: true},
}

// NewHandler builds the demo router. Being a chi router, it is walkable, so
// list mode can enumerate its routes.
func NewHandler() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", health)
	r.Get("/users", listUsers)
	r.Get("/users/{id}", getUser)
	r.Post("/users", createUser)
	r.Get("/env/{key}", getEnv)
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func listUsers(w http.ResponseWriter, r *http.Request) {
	out := []User{users["1"], users["2"]}
	if r.URL.Query().Get("admin") == "true" {
		out = []User{users["2"]}
	}
	writeJSON(w, http.StatusOK, out)
}

func getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := users[chi.URLParam(r, "id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func createUser(w http.ResponseWriter, r *http.Request) {
	var fields map[string]string
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&fields)
	}
	name := fields["name"]
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	writeJSON(w, http.StatusCreated, User{ID: "3", Name: name, Admin: fields["admin"] == "true"})
}

// getEnv echoes one entry of the resolved environment mapping, demonstrating
// that --env flags and env files reach the handler.
func getEnv(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	value, ok := dispatch.EnvFrom(r.Context())[key]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unset variable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{key: value})
}
