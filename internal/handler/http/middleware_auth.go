package http

import (
	"net/http"

	"github.com/MKhiriev/go-account-auth/internal/logger"
	"github.com/MKhiriev/go-account-auth/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it to an
// account via [service.AuthService.Authenticate], and stores the account in
// the request context with [utils.WithAccount] before delegating to next.
//
// Requests without a usable header are rejected with HTTP 401. Token failures
// are mapped through the regular error envelope, so an invalid or expired
// token is a 401 while a storage failure is a 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Send()
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		account, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccount(ctx, &account)))
	})
}
