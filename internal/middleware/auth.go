package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/maze-server/internal/config"
)

type CtxKey int

const (
	CtxPlayerClaims CtxKey = iota
)

func WithPlayerClaims(ctx context.Context, claims *config.PlayerClaims) context.Context {
	return context.WithValue(ctx, CtxPlayerClaims, claims)
}

func PlayerClaims(ctx context.Context) (*config.PlayerClaims, bool) {
	claims, ok := ctx.Value(CtxPlayerClaims).(*config.PlayerClaims)
	return claims, ok && claims != nil
}

// Auth puts the claims of a valid player token into the request context.
// Requests with a broken or expired token have their cookies cleared and are
// served anonymously.
func Auth(log logrus.FieldLogger, cookies *config.Cookies, j *config.JWT) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := cookies.Token(r)
			if errors.Is(err, http.ErrNoCookie) {
				h.ServeHTTP(w, r)
				return
			}
			claims, err := j.ParsePlayerClaims(token)
			if err != nil {
				log.WithError(err).Debug("rejected player token")
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			h.ServeHTTP(w, r.WithContext(WithPlayerClaims(r.Context(), claims)))
		})
	}
}
