package atcoder

import (
	"net/http"

	"atcoder_judger/lib/handler"

	"github.com/gin-gonic/gin"
)

// handleStatus reports the node state: whether the remote session is
// authenticated and which submissions are currently polled.
func (j *Judger) handleStatus(c *gin.Context) {
	loggedIn, err := j.session.LoggedIn()
	if err != nil {
		handler.RespErr(c, http.StatusBadGateway, "remote check failed: %s", err.Error())
		return
	}

	tracking := j.tracker.Tracking()
	handler.RespOK(c, gin.H{
		"epoch":        j.epoch,
		"loggedIn":     loggedIn,
		"tracking":     tracking,
		"trackedCount": len(tracking),
	})
}
