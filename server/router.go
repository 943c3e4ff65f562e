package server

import (
	"net/http"

	"todo-service/handlers"

	"github.com/gorilla/mux"
)

// NewRouter wires the JSON API. Unsupported verbs on a known path get the
// 405 envelope, unknown paths the 404 envelope.
func NewRouter(tasks *handlers.TaskHandler, categories *handlers.CategoryHandler, authn *handlers.AuthHandler) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)

	r.HandleFunc("/tasks", tasks.List).Methods(http.MethodGet)
	r.HandleFunc("/tasks", tasks.Save).Methods(http.MethodPost)
	r.HandleFunc("/tasks", tasks.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/stats", tasks.Stats).Methods(http.MethodGet)

	r.HandleFunc("/categories", categories.List).Methods(http.MethodGet)
	r.HandleFunc("/categories", categories.Save).Methods(http.MethodPost)
	r.HandleFunc("/categories", categories.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/register", authn.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", authn.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", authn.Logout).Methods(http.MethodPost)
	r.HandleFunc("/check-auth", authn.CheckAuth).Methods(http.MethodGet)
	r.HandleFunc("/profile", authn.Profile).Methods(http.MethodPost)

	return r
}
