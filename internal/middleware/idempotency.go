package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyResponseTTL = 24 * time.Hour

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// cachedResponse is what gets stored in Redis: the original status code plus
// the body, so a replay reproduces the first response exactly.
type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

func encodeCachedResponse(status int, body []byte) ([]byte, error) {
	return json.Marshal(cachedResponse{Status: status, Body: body})
}

func decodeCachedResponse(raw []byte) (cachedResponse, error) {
	var cr cachedResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return cachedResponse{}, err
	}
	if cr.Status == 0 {
		cr.Status = http.StatusOK
	}
	return cr, nil
}

// Idempotency guards POST mutations against duplicate submission (double
// click, browser retry). The first request takes a short-lived lock; a
// concurrent duplicate gets 409 while the original is in flight, and a repeat
// with the same key after completion replays the cached response.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id_validated")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		cached, err := rdb.Get(c.Request.Context(), cacheKey).Bytes()
		if err == nil {
			if cr, decodeErr := decodeCachedResponse(cached); decodeErr == nil {
				c.Data(cr.Status, "application/json; charset=utf-8", cr.Body)
				c.Abort()
				return
			}
		}

		// Lock expires on its own so a crashed handler cannot wedge the key.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()

		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Sua solicitação já está sendo processada, aguarde um momento.",
			})
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			if encoded, encodeErr := encodeCachedResponse(status, writer.body.Bytes()); encodeErr == nil {
				_ = rdb.Set(c.Request.Context(), cacheKey, encoded, idempotencyResponseTTL).Err()
			}
		}
		_ = rdb.Del(c.Request.Context(), lockKey).Err()
	}
}
