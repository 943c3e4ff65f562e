package auth

// Identity is the acting user for one request. It is always derived from a
// verified session and threaded explicitly into service calls, never read
// from ambient state.
type Identity struct {
	UserID   int64
	Username string
}
