package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/Vinaypenke01/Elite-Cars/pkg/logger"
)

const UIDKey contextKey = "uid"

// SessionResolver turns a bearer token into the subject uid.
type SessionResolver func(ctx context.Context, token string) (string, error)

// AdminChecker reports whether the uid has an admin profile. Lookup
// failures must come back as errors so gating stays fail-closed.
type AdminChecker func(ctx context.Context, uid string) (bool, error)

// RequireAdmin wraps individual admin routes. Authorization is the
// presence of an admin profile for the authenticated uid; a missing
// profile and a failed lookup are both treated as "not an admin".
func RequireAdmin(resolve SessionResolver, isAdmin AdminChecker, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			token := extractBearerToken(r)
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			uid, err := resolve(r.Context(), token)
			if err != nil {
				log.Warn("Session token rejected",
					"request_id", RequestID(r),
					"path", r.URL.Path,
					"error", err,
				)
				writeAuthError(w, http.StatusUnauthorized, "Invalid or expired session")
				return
			}

			admin, err := isAdmin(r.Context(), uid)
			if err != nil {
				log.Error("Admin profile lookup failed",
					"request_id", RequestID(r),
					"uid", uid,
					"error", err,
				)
				admin = false
			}
			if !admin {
				writeAuthError(w, http.StatusForbidden, "Admin access required")
				return
			}

			ctx := context.WithValue(r.Context(), UIDKey, uid)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

// SessionUID returns the authenticated uid stashed by RequireAdmin, or "".
func SessionUID(r *http.Request) string {
	if uid, ok := r.Context().Value(UIDKey).(string); ok {
		return uid
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
