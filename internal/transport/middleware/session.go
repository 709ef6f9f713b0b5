package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/fontsmith/fontsmith-backend/pkg/ctxutil"
)

// SessionHeader carries the opaque session id that scopes search history.
const SessionHeader = "X-Session-Id"

// Session resolves the client session: an id supplied by the caller is kept,
// otherwise a fresh one is minted. The id is stored in the context and
// echoed in the response so the client can persist it.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(SessionHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithSessionID(r.Context(), id)
		w.Header().Set(SessionHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
