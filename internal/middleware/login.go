package middleware

import (
	"encoding/json"
	"net/http"

	"vigil/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// LoginHandler issues JWT tokens for valid credentials at POST /api/v1/auth/login
func LoginHandler(authenticator *auth.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, `{"error": "method not allowed"}`, http.StatusMethodNotAllowed)
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
			return
		}

		token, expiresAt, err := authenticator.Authenticate(req.Username, req.Password)
		if err != nil {
			switch err {
			case auth.ErrAuthDisabled:
				http.Error(w, `{"error": "authentication is disabled"}`, http.StatusNotFound)
			default:
				http.Error(w, `{"error": "invalid credentials"}`, http.StatusUnauthorized)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(loginResponse{Token: token, ExpiresAt: expiresAt})
	})
}
