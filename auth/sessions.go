package auth

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/umakantv/go-utils/cache"
)

const sessionKeyPrefix = "session:"

// CookieName carries the session id in the browser.
const CookieName = "session_id"

// Sessions issues and resolves cookie-backed sessions stored in the cache.
type Sessions struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewSessions builds a session manager with the given lifetime.
func NewSessions(c cache.Cache, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Sessions{cache: c, ttl: ttl}
}

// Create stores a new session for the identity and sets the session cookie.
func (s *Sessions) Create(w http.ResponseWriter, ident Identity) string {
	sessionID := uuid.New().String()
	s.cache.Set(sessionKeyPrefix+sessionID, map[string]interface{}{
		"user_id":  ident.UserID,
		"username": ident.Username,
	}, s.ttl)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(s.ttl / time.Second),
	})
	return sessionID
}

// Identity resolves the request's session cookie to the acting user.
func (s *Sessions) Identity(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Identity{}, false
	}
	cached, err := s.cache.Get(sessionKeyPrefix + cookie.Value)
	if err != nil {
		return Identity{}, false
	}
	data, ok := cached.(map[string]interface{})
	if !ok {
		return Identity{}, false
	}
	userID, ok := toInt64(data["user_id"])
	if !ok || userID == 0 {
		return Identity{}, false
	}
	username, _ := data["username"].(string)
	return Identity{UserID: userID, Username: username}, true
}

// Destroy drops the session and expires the cookie.
func (s *Sessions) Destroy(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		s.cache.Delete(sessionKeyPrefix + cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// toInt64 covers the numeric types a session value comes back as: the
// memory cache returns what was stored, Redis round-trips through JSON and
// yields float64.
func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
