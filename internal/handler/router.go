package handler

import (
	"github.com/gorilla/mux"
)

// Router builds the API route table. The auth middleware guards every
// /api/tasks route; the auth endpoints stay public.
func Router(h *Handler, auth mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")

	tasks := r.PathPrefix("/api/tasks").Subrouter()
	tasks.Use(auth)
	tasks.HandleFunc("", h.ListTasks).Methods("GET")
	tasks.HandleFunc("", h.CreateTask).Methods("POST")
	tasks.HandleFunc("/{id}", h.GetTask).Methods("GET")
	tasks.HandleFunc("/{id}", h.UpdateTask).Methods("PUT")
	tasks.HandleFunc("/{id}", h.DeleteTask).Methods("DELETE")

	return r
}
