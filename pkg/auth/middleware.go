package auth

import (
	"context"
	"net/http"

	"github.com/vcarvalho/fiado/internal/session"
)

type ContextKey string

const SessionKey ContextKey = "session"

// CookieName names the signed session cookie.
const CookieName = "fiado_session"

type SessionGetter interface {
	Get(ctx context.Context, id string) (*session.Session, error)
}

// RequireSession gates a route group behind a valid session. Requests
// without one are redirected to the login page, mirroring the dashboard's
// login-required behavior.
func RequireSession(sessions SessionGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			tokenService := &TokenService{}
			sessionID, err := tokenService.ValidateSessionToken(cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			sess, err := sessions.Get(r.Context(), sessionID)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session placed by RequireSession.
func SessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(SessionKey).(*session.Session)
	return sess
}
