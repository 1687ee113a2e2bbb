// middleware/brotli.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

type BrotliConfig struct {
	Quality   int
	Skipper   func(c *gin.Context) bool
	MinLength int
}

var DefaultBrotliConfig = BrotliConfig{
	Quality:   brotli.DefaultCompression,
	MinLength: 1024,
	Skipper:   nil,
}

type brotliState int

const (
	brotliBuffering brotliState = iota
	brotliCompressing
	brotliPassthrough
)

// brotliWriter holds the body back until MinLength bytes arrive, then
// commits to compressing. Bodies that end or flush earlier go out as is.
type brotliWriter struct {
	gin.ResponseWriter
	quality   int
	minLength int
	state     brotliState
	buf       []byte
	writer    *brotli.Writer
}

func (bw *brotliWriter) Write(data []byte) (int, error) {
	switch bw.state {
	case brotliCompressing:
		return bw.writer.Write(data)
	case brotliPassthrough:
		return bw.ResponseWriter.Write(data)
	}

	bw.buf = append(bw.buf, data...)
	if len(bw.buf) < bw.minLength {
		return len(data), nil
	}
	if err := bw.startCompression(); err != nil {
		return 0, err
	}
	return len(data), nil
}

func (bw *brotliWriter) WriteString(s string) (int, error) {
	return bw.Write([]byte(s))
}

// Flush commits to the current state so streamed output is not held back.
func (bw *brotliWriter) Flush() {
	switch bw.state {
	case brotliCompressing:
		_ = bw.writer.Flush()
	case brotliBuffering:
		bw.state = brotliPassthrough
		_ = bw.drain()
	}
	bw.ResponseWriter.Flush()
}

func (bw *brotliWriter) startCompression() error {
	h := bw.ResponseWriter.Header()
	if h.Get("Content-Encoding") != "" {
		bw.state = brotliPassthrough
		return bw.drain()
	}
	h.Set("Content-Encoding", "br")
	h.Del("Content-Length")

	bw.state = brotliCompressing
	bw.writer = brotli.NewWriterLevel(bw.ResponseWriter, bw.quality)
	_, err := bw.writer.Write(bw.buf)
	bw.buf = nil
	return err
}

func (bw *brotliWriter) drain() error {
	if len(bw.buf) == 0 {
		return nil
	}
	_, err := bw.ResponseWriter.Write(bw.buf)
	bw.buf = nil
	return err
}

// finish ends the body once the handler chain returns.
func (bw *brotliWriter) finish() error {
	if bw.state == brotliCompressing {
		return bw.writer.Close()
	}
	return bw.drain()
}

func Brotli() gin.HandlerFunc {
	return BrotliWithConfig(DefaultBrotliConfig)
}

func BrotliWithConfig(cfg BrotliConfig) gin.HandlerFunc {
	if cfg.Quality < 0 || cfg.Quality > 11 {
		cfg.Quality = brotli.DefaultCompression
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultBrotliConfig.MinLength
	}

	return func(c *gin.Context) {
		if shouldSkip(c) {
			c.Next()
			return
		}

		if cfg.Skipper != nil && cfg.Skipper(c) {
			c.Next()
			return
		}

		if !acceptsBrotli(c.Request) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")

		bw := &brotliWriter{
			ResponseWriter: c.Writer,
			quality:        cfg.Quality,
			minLength:      cfg.MinLength,
		}

		defer func() {
			if err := bw.finish(); err != nil {
				_ = c.Error(err)
			}
			c.Writer = bw.ResponseWriter
		}()

		c.Writer = bw
		c.Next()
	}
}

// shouldSkip returns true for requests whose responses have no body to
// compress or must be streamed untouched.
func shouldSkip(c *gin.Context) bool {
	if c.Request.Method == http.MethodHead {
		return true
	}
	if strings.Contains(c.GetHeader("Accept"), "text/event-stream") {
		return true
	}
	return false
}

func acceptsBrotli(r *http.Request) bool {
	ae := r.Header.Get("Accept-Encoding")
	for _, enc := range strings.Split(ae, ",") {
		// Drop parameters such as ";q=0.8".
		name, params, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if !strings.EqualFold(strings.TrimSpace(name), "br") {
			continue
		}
		if q := strings.TrimSpace(params); q == "q=0" || q == "q=0.0" {
			return false
		}
		return true
	}
	return false
}
