package middleware

import (
	"net/http"

	"myshop/internal/services/jwttoken"
	"myshop/internal/session"
)

const TokenCookieName = "token"

// Auth requires a valid session token cookie and the persisted auth
// flag. Without both, shop data is not served.
func Auth(sessions *session.Manager, secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
			tokenCookie, err := req.Cookie(TokenCookieName)
			if err != nil {
				if err == http.ErrNoCookie {
					resp.WriteHeader(http.StatusUnauthorized)
					return
				}

				resp.WriteHeader(http.StatusInternalServerError)
				return
			}

			if err := jwttoken.Parse(tokenCookie.Value, secretKey); err != nil {
				resp.WriteHeader(http.StatusUnauthorized)
				return
			}

			active, err := sessions.Active(req.Context())
			if err != nil {
				resp.WriteHeader(http.StatusInternalServerError)
				return
			}

			if !active {
				resp.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(resp, req)
		})
	}
}
