package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AuthConfig holds API key configuration for write protection.
type AuthConfig struct {
	keys []string
}

// NewAuthConfigWithKeys creates an AuthConfig with the given keys.
// An empty key list disables protection.
func NewAuthConfigWithKeys(keys []string) AuthConfig {
	return AuthConfig{keys: keys}
}

// Enabled reports whether any keys are configured.
func (c AuthConfig) Enabled() bool {
	return len(c.keys) > 0
}

// Valid reports whether the given key matches a configured key.
func (c AuthConfig) Valid(key string) bool {
	if key == "" {
		return false
	}
	for _, k := range c.keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}

// WriteProtect returns middleware that requires a valid X-API-KEY header on
// mutating methods (POST, PUT, PATCH, DELETE). Read methods pass through.
// With no keys configured, everything passes through.
func WriteProtect(config AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled() || !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if !config.Valid(r.Header.Get("X-API-KEY")) {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error": "invalid or missing API key",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WriteProtectAuth is a convenience wrapper around WriteProtect.
func WriteProtectAuth(keys []string) func(http.Handler) http.Handler {
	return WriteProtect(NewAuthConfigWithKeys(keys))
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
