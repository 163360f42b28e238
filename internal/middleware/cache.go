package middleware

import (
    "bytes"
    "crypto/sha1"
    "encoding/json"
    "fmt"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/chefgpt/backend/internal/config"
)

// cachedResponse is the envelope stored in Redis: enough to replay the
// response bytes and headers exactly as the origin produced them.
type cachedResponse struct {
    Status int         `json:"status"`
    Header http.Header `json:"header"`
    Body   []byte      `json:"body"`
}

// captureWriter tees the response into a buffer while forwarding it to
// the client.  Responses larger than limit are forwarded but not cached.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int
    limit  int
}

func (cw *captureWriter) WriteHeader(code int) {
    cw.status = code
    cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
    cw.size += len(b)
    if cw.size <= cw.limit {
        cw.buf.Write(b)
    }
    return cw.ResponseWriter.Write(b)
}

// cacheKeyFrom builds a stable key from the matched route and query.
func cacheKeyFrom(cfg config.CacheConfig, c echo.Context) string {
    sum := sha1.Sum([]byte(c.Path() + "?" + c.Request().URL.RawQuery))
    return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}

// NewRedisCache returns a middleware that serves configured methods out
// of Redis.  Only 2xx responses within the size cap are stored.  When
// rdb is nil (Redis unreachable at startup) the middleware is a no-op
// so the API degrades to uncached operation instead of failing.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
                return next(c)
            }

            ctx := c.Request().Context()
            key := cacheKeyFrom(cfg, c)

            if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
                var cached cachedResponse
                if err := json.Unmarshal(bs, &cached); err == nil {
                    h := c.Response().Header()
                    for k, vals := range cached.Header {
                        if strings.EqualFold(k, "Content-Length") {
                            continue
                        }
                        for _, v := range vals {
                            h.Add(k, v)
                        }
                    }
                    h.Set("X-Cache", "HIT")
                    return c.Blob(cached.Status, h.Get(echo.HeaderContentType), cached.Body)
                }
            }

            cw := &captureWriter{
                ResponseWriter: c.Response().Writer,
                status:         http.StatusOK,
                limit:          cfg.MaxBodyBytes,
            }
            c.Response().Header().Set("X-Cache", "MISS")
            c.Response().Writer = cw

            if err := next(c); err != nil {
                return err
            }

            if cw.status >= 200 && cw.status < 300 && cw.size <= cw.limit {
                entry := cachedResponse{
                    Status: cw.status,
                    Header: c.Response().Header().Clone(),
                    Body:   cw.buf.Bytes(),
                }
                if bs, err := json.Marshal(entry); err == nil {
                    // cache write failure only costs the next request a miss
                    _ = rdb.Set(ctx, key, bs, cfg.TTL).Err()
                }
            }
            return nil
        }
    }
}
