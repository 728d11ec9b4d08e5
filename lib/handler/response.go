package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespOK and RespErr keep every JSON response in the same envelope so that
// callers can always check "ok" first.

func RespOK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"response": data,
	})
}

func RespErr(c *gin.Context, code int, errf string, values ...interface{}) {
	c.JSON(code, gin.H{
		"ok":    false,
		"error": fmt.Sprintf(errf, values...),
	})
}
