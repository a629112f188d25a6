package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int         `json:"code"` // 0: success, -1: failure
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

func Fail(c *gin.Context, msg string) {
	FailWithStatus(c, http.StatusOK, msg, nil)
}

// FailWithStatus is Fail for the few cases that need a non-200 status.
// data, when set, lets the client redraw without another request.
func FailWithStatus(c *gin.Context, status int, msg string, data interface{}) {
	c.JSON(status, Response{
		Code: -1,
		Msg:  msg,
		Data: data,
	})
}
