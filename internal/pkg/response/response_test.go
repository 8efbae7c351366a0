package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSuccessAndErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Test Success
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Success(c, []map[string]string{{"foo": "bar"}})
	require.Equal(t, 200, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	require.Equal(t, "bar", list[0]["foo"])

	// Test Error
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error(c, 400, "bad request", "BAD_REQ")
	require.Equal(t, 400, w.Code)
	var bodyErr map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bodyErr))
	require.Equal(t, "bad request", bodyErr["error"])
	require.Equal(t, "BAD_REQ", bodyErr["code"])
	require.NotContains(t, bodyErr, "message")
}

func TestNotFoundOmitsCode(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	NotFound(c, "Todo not found")

	require.Equal(t, 404, w.Code)
	require.JSONEq(t, `{"error":"Todo not found"}`, w.Body.String())
}

func TestInternalServerError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	InternalServerError(c, "Internal server error", "")
	require.Equal(t, 500, w.Code)
	require.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	InternalServerError(c, "Internal server error", "boom")
	require.JSONEq(t, `{"error":"Internal server error","message":"boom"}`, w.Body.String())
}

func TestCreatedAndNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, map[string]string{"id": "1"})
	require.Equal(t, 201, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	NoContent(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, 204, w.Code)
	require.Zero(t, w.Body.Len())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	BindJSONError(c, errors.New("unexpected EOF"))
	require.Equal(t, 400, w.Code)
	require.JSONEq(t, `{"error":"Invalid request format","code":"INVALID_JSON"}`, w.Body.String())
}
