package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWithoutTraceHeader(t *testing.T) {
	req := httptest.NewRequest("POST", "http://example.com/webhook", nil)
	w := httptest.NewRecorder()

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = req

	l, err := NewLogger(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, l.Trace())

	l.Infof("testing %s", "payment")
	l.SetLabel(LabelUserID, "user-1")
	assert.Equal(t, "user-1", l.labels[LabelUserID])
}

func TestNewLoggerWithTraceHeader(t *testing.T) {
	req := httptest.NewRequest("POST", "http://example.com/payment-sheet", nil)
	req.Header.Set("X-Cloud-Trace-Context", "abc123/span;o=1")

	w := httptest.NewRecorder()

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = req

	l, err := NewLogger(ctx)
	assert.NoError(t, err)
	assert.Contains(t, l.Trace(), "abc123")
}

func TestFromContextFallsBackToDefaultLogger(t *testing.T) {
	w := httptest.NewRecorder()

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(w)

	l := FromContext(ctx)
	assert.NotNil(t, l)
	assert.NotEmpty(t, l.Trace())
}
