package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskdeck/backend/api/handler"
	authUC "github.com/taskdeck/backend/usecase/auth"
)

// SessionAuth validates the bearer token against the session store and
// injects the resolved owner email into the request, so handlers never trust
// a client-supplied identity header.
func SessionAuth(auth *authUC.UseCase, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			// Strip any spoofed identity before authenticating.
			ctx.Request.Header.Del(apiHandler.HeaderOwnerEmail)

			token := extractToken(ctx)
			if token == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			stdCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			owner, err := auth.Authenticate(stdCtx, token)
			cancel()
			if err != nil {
				logger.Warn("token rejected", zap.Error(err))
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			ctx.Request.Header.Set(apiHandler.HeaderOwnerEmail, owner)
			next(ctx)
		}
	}
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
