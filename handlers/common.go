package handlers

import "net/http"

// Health reports liveness for probes.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy", "service": "todo-service"}`))
}

// NotFound keeps unknown paths inside the JSON envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed answers unsupported verbs on known paths.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeFailure(w, http.StatusMethodNotAllowed, "Method not allowed")
}
