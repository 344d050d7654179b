package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the uniform response envelope.
type Body struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data,omitempty"`
}

// Page wraps list payloads with pagination totals.
type Page struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Success writes a success envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{StatusCode: CodeOK, Msg: "ok", Data: data})
}

// SuccessWithMsg writes a success envelope with a custom message.
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Body{StatusCode: CodeOK, Msg: msg, Data: data})
}

// SuccessWithPage writes a paginated success envelope.
func SuccessWithPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	Success(c, Page{List: list, Total: total, Page: page, PageSize: pageSize})
}

// Error writes an error envelope with the given business code.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Body{StatusCode: code, Msg: msg, Data: attachRequestID(c)})
}

// BadRequest writes a 400 envelope.
func BadRequest(c *gin.Context, msg string) {
	Error(c, CodeBadRequest, msg)
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context, msg string) {
	Error(c, CodeUnauthorized, msg)
}

// Forbidden writes a 403 envelope.
func Forbidden(c *gin.Context, msg string) {
	Error(c, CodeForbidden, msg)
}

// NotFound writes a 404 envelope.
func NotFound(c *gin.Context, msg string) {
	Error(c, CodeNotFound, msg)
}

// TooManyRequests writes a 429 envelope.
func TooManyRequests(c *gin.Context, msg string) {
	Error(c, CodeTooManyRequests, msg)
}

// Internal writes a 500 envelope.
func Internal(c *gin.Context, msg string) {
	Error(c, CodeInternal, msg)
}

// attachRequestID surfaces the request id on error payloads so users can
// quote it in support requests.
func attachRequestID(c *gin.Context) interface{} {
	requestID := c.GetString("request_id")
	if requestID == "" {
		return nil
	}
	return gin.H{"request_id": requestID}
}
