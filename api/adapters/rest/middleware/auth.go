package middleware

import (
	"net/http"
	"strings"
)

const authorizationHeader = "Authorization"

var schemes = []string{"Token ", "Bearer "}

type TokenVerifier interface {
	Verify(token string) error
}

func bearerToken(header string) string {
	for _, scheme := range schemes {
		if len(header) > len(scheme) && strings.EqualFold(header[:len(scheme)], scheme) {
			return strings.TrimSpace(header[len(scheme):])
		}
	}
	return ""
}

// Auth lets the request through only with a token the verifier accepts,
// sent as "Authorization: Token <jwt>" or "Authorization: Bearer <jwt>".
func Auth(next http.HandlerFunc, verifier TokenVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get(authorizationHeader))
		if token == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="amharic"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if err := verifier.Verify(token); err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
