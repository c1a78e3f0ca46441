package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/erp/internal/entity"
	"github.com/samandr77/microservices/erp/pkg/logger"
	"github.com/samandr77/microservices/erp/pkg/metrics"
)

const requestIDHeader = "X-Request-Id"

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/auth.go -package=mocks -typed

type AuthClient interface {
	User(ctx context.Context, token string) (entity.User, error)
}

type Middleware struct {
	auth AuthClient
}

func NewMiddleware(auth AuthClient) *Middleware {
	return &Middleware{
		auth: auth,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.Must(uuid.NewV4()).String()
		}

		ctx := logger.SetRequestID(r.Context(), reqID)
		w.Header().Set(requestIDHeader, reqID)

		headers := ""

		for k, v := range r.Header {
			if k == "Authorization" {
				continue
			}

			headers += fmt.Sprintf("%s: %s,\n", k, v)
		}

		slog.InfoContext(ctx, "incoming request", "method", r.Method, "url", r.URL.String(), "headers", headers, "user_ip", r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			rec := recover()
			if rec != nil {
				slog.ErrorContext(ctx, "panic", "error", rec, "stack", string(debug.Stack()))
				SendErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec), errInternalText)
			}
		}(r.Context())

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-Id")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Metrics records every request under its route pattern, so ids in the path do not explode
// the label set.
func (m *Middleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		metrics.ObserveHTTP(r.Method, route, status, time.Since(start))
	})
}

func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Authorization başlığında token yok")
			return
		}

		user, err := m.auth.User(ctx, accessToken)
		if err != nil {
			if errors.Is(err, entity.ErrForbidden) {
				SendErr(ctx, w, http.StatusUnauthorized, err, "Oturum geçersiz veya süresi dolmuş")
				return
			}

			SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

			return
		}

		if user.IsBlocked {
			SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, "Kullanıcı engellenmiş")
			return
		}

		ctx = logger.SetUserID(ctx, user.ID.String())
		ctx = logger.SetCompanyID(ctx, user.CompanyID.String())
		ctx = entity.SetUserToContext(ctx, user)
		ctx = entity.SetTokenToContext(ctx, accessToken)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
