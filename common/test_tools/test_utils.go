package testtools

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// GenerateCtxWithJSON returns a gin test context whose request body carries
// the given value encoded as JSON.
func GenerateCtxWithJSON(t *testing.T, data map[string]interface{}) *gin.Context {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8082", nil)

	jsonbytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(jsonbytes))

	return ctx
}

// GenerateCtxWithBody returns a gin test context carrying the raw body and
// headers untouched, the way provider webhooks are delivered.
func GenerateCtxWithBody(t *testing.T, body []byte, headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8082/webhook", bytes.NewReader(body))

	for k, v := range headers {
		ctx.Request.Header.Set(k, v)
	}

	return ctx, recorder
}
