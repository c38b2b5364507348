package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope for every API reply. Code 0 means success;
// business errors carry a non-zero code and a human-readable msg that clients
// surface directly.
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Msg: msg, Data: data})
}

func Created(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: 0, Msg: msg, Data: data})
}

func Error(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Response{Code: code, Msg: msg})
}

// Business error codes. HTTP status stays 200 for these; transport-level
// denials (401/403) are raised by the middlewares.
const (
	CodeInvalidParams   = 1001
	CodeDuplicate       = 2001
	CodeBadCredentials  = 2002
	CodeAccountDisabled = 2005
	CodeUnauthorized    = 4001
	CodeBadAuthHeader   = 4002
	CodeForbidden       = 4003
	CodeNotFound        = 4004
	CodeConflict        = 4005
	CodeDailyLimit      = 4290
	CodeInternal        = 5000
)
