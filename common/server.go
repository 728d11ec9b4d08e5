package common

import (
	"context"
	"net/http"
	"strconv"

	"atcoder_judger/lib/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (node *JudgerNode) recoverRequest(c *gin.Context, err any) {
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

func (node *JudgerNode) initServer() {
	gin.SetMode(gin.ReleaseMode)
	node.Router = gin.New()

	if logger.GetLevel() <= logger.LogLevelTrace {
		node.Router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
			Output: logger.CreateWriter(logger.LogLevelTrace, "Handler log:"),
		}))
	}
	node.Router.Use(gin.CustomRecoveryWithWriter(
		logger.CreateWriter(logger.LogLevelError, "Panic in handler:"),
		node.recoverRequest,
	))

	node.Router.GET("/metrics", gin.WrapH(
		promhttp.HandlerFor(node.Metrics.Gatherer, promhttp.HandlerOpts{}),
	))
}

func (node *JudgerNode) runServer() {
	addr := ":" + strconv.Itoa(node.Config.Port)
	if node.Config.Host != nil {
		addr = *node.Config.Host + addr
	}
	logger.Info("Starting server at " + addr)
	server := http.Server{
		Addr:    addr,
		Handler: node.Router,
	}
	go func() {
		<-node.StopCtx.Done()
		logger.Info("Shutting down server")
		server.Shutdown(context.Background())
	}()
	server.ListenAndServe()
}
