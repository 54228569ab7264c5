package api

import (
	"net"
	"net/http"

	"plantcompareapi/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var rateLimitScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RateLimitMiddleware applies a fixed-window per-IP limit to write endpoints.
// Requests pass through untouched when no redis client is configured, and on
// redis errors the limiter fails open.
func (h *Handler) RateLimitMiddleware(f http.HandlerFunc) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		if h.RedisCli == nil {
			f(w, r)
			return
		}

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		key := "ratelimit:" + ip
		n, err := rateLimitScript.Run(r.Context(), h.RedisCli, []string{key}, config.WRITE_RATE_WINDOW_MS).Int64()
		if err != nil {
			h.Logger.Warn("rate limiter unavailable", zap.Error(err))
			f(w, r)
			return
		}

		if n > config.WRITE_RATE_LIMIT {
			resParams := &ResParams{W: w, R: r}
			resParams.ResData = &struct {
				Detail string `json:"detail"`
			}{Detail: "Too many requests"}
			resParams.Code = http.StatusTooManyRequests
			h.Res(resParams)
			return
		}

		f(w, r)

	}

}
