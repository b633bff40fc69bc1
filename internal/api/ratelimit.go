package api

import (
	"net"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/foodgramapp/foodgram-server/internal/errors"
	"github.com/foodgramapp/foodgram-server/internal/metrics"
)

// loginRateLimit is a huma operation middleware that limits login attempts per client IP.
// RealIP has already rewritten the remote address when the server sits behind a proxy.
func (s *Server) loginRateLimit(ctx huma.Context, next func(huma.Context)) {
	key := clientIP(ctx.RemoteAddr())
	if !s.loginLimiter.Allow(key) {
		metrics.RecordRateLimitHit("login")
		s.logger.Warn("login rate limit exceeded", "ip", key)
		msg := "Too many login attempts. Please try again later."
		_ = huma.WriteErr(s.api, ctx, http.StatusTooManyRequests, msg, domainerrors.RateLimited(msg))
		return
	}
	next(ctx)
}

// clientIP strips the port from a remote address.
func clientIP(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
