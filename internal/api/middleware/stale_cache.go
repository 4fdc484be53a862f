package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/api/httperr"
	"github.com/casaluna/hotel-pms/internal/api/metrics"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// HeaderCache marks responses served from the offline cache.
const HeaderCache = "X-Cache"

// ResponseStore persists the last good response of a GET URL.
type ResponseStore interface {
	Get(ctx context.Context, key string) (*ports.CachedResponse, error)
	Set(ctx context.Context, key string, resp *ports.CachedResponse) error
}

// StaleCache remembers successful GET responses and replays the last one,
// marked "X-Cache: stale", when the handler fails with a server error. Put
// it after Gate so only authorized callers ever see cached data.
func StaleCache(store ResponseStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(c.Request())

			res := c.Response()
			rec := &bodyRecorder{ResponseWriter: res.Writer}
			res.Writer = rec
			err := next(c)
			res.Writer = rec.ResponseWriter

			if err != nil {
				if res.Committed || httperr.Status(err) < http.StatusInternalServerError {
					return err
				}
				cached, cerr := store.Get(ctx, key)
				if cerr != nil {
					log.Warn().Err(cerr).Str("key", key).Msg("response cache read failed")
					return err
				}
				if cached == nil {
					return err
				}
				log.Warn().Err(err).Str("key", key).Time("stored_at", cached.StoredAt).Msg("serving stale response")
				metrics.ResponseCacheTotal.WithLabelValues("stale_served").Inc()
				res.Header().Set(HeaderCache, "stale")
				return c.Blob(cached.Status, cached.ContentType, cached.Body)
			}

			if res.Status == http.StatusOK && rec.buf.Len() > 0 {
				entry := &ports.CachedResponse{
					Status:      res.Status,
					ContentType: res.Header().Get(echo.HeaderContentType),
					Body:        rec.buf.Bytes(),
					StoredAt:    time.Now().UTC(),
				}
				if serr := store.Set(ctx, key, entry); serr != nil {
					log.Warn().Err(serr).Str("key", key).Msg("response cache write failed")
				} else {
					metrics.ResponseCacheTotal.WithLabelValues("stored").Inc()
				}
			}
			return nil
		}
	}
}

// cacheKey is the path plus query, without the token parameter.
func cacheKey(r *http.Request) string {
	q := r.URL.Query()
	q.Del("access_token")
	if enc := q.Encode(); enc != "" {
		return r.URL.Path + "?" + enc
	}
	return r.URL.Path
}

type bodyRecorder struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}
