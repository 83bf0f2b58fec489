package api

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ginContextWithHeaders(headers map[string]string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestExtractAuthor_ForwardedUserWins(t *testing.T) {
	c := ginContextWithHeaders(map[string]string{
		"X-Forwarded-User":  "alice",
		"X-Forwarded-Email": "alice@example.com",
		"X-Remote-User":     "remote-alice",
	})
	assert.Equal(t, "alice", extractAuthor(c))
}

func TestExtractAuthor_FallsBackToEmail(t *testing.T) {
	c := ginContextWithHeaders(map[string]string{
		"X-Forwarded-Email": "bob@example.com",
		"X-Remote-User":     "remote-bob",
	})
	assert.Equal(t, "bob@example.com", extractAuthor(c))
}

func TestExtractAuthor_RemoteUser(t *testing.T) {
	c := ginContextWithHeaders(map[string]string{
		"X-Remote-User": "remote-carol",
	})
	assert.Equal(t, "remote-carol", extractAuthor(c))
}

func TestExtractAuthor_Default(t *testing.T) {
	c := ginContextWithHeaders(nil)
	assert.Equal(t, "api-client", extractAuthor(c))
}
