package middlewares

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	// JSONBodyKey is the context key holding the parsed request body.
	JSONBodyKey = "json_body"

	// MaxJSONBodyBytes caps the size of a parsed body.
	MaxJSONBodyBytes int64 = 100 << 10
)

// JSONBody parses application/json request bodies and stores the result
// under JSONBodyKey. Only objects and arrays are accepted at the top level.
// The raw bytes stay cached under gin.BodyBytesKey so handlers can bind again.
func JSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !hasBody(c.Request) || !strings.EqualFold(c.ContentType(), binding.MIMEJSON) {
			c.Next()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxJSONBodyBytes)

		var body any
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			var maxErr *http.MaxBytesError
			switch {
			case errors.As(err, &maxErr):
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request entity too large"})
				return
			case errors.Is(err, io.EOF):
				body = map[string]any{}
			default:
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
				return
			}
		} else if !trailingDataFree(c) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		switch body.(type) {
		case map[string]any, []any:
		default:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "JSON body must be an object or array"})
			return
		}

		c.Set(JSONBodyKey, body)
		c.Next()
	}
}

// JSONBodyFrom returns the body parsed by JSONBody, if any.
func JSONBodyFrom(c *gin.Context) (any, bool) {
	return c.Get(JSONBodyKey)
}

// trailingDataFree reports whether the cached body holds exactly one JSON
// value. The binding decoder stops after the first value.
func trailingDataFree(c *gin.Context) bool {
	raw, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return false
	}
	b, ok := raw.([]byte)
	return ok && json.Valid(b)
}

func hasBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	return r.ContentLength != 0
}
