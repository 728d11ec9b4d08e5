package common

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"atcoder_judger/common/config"
	"atcoder_judger/common/metrics"
	"atcoder_judger/lib/logger"

	"github.com/gin-gonic/gin"
)

// JudgerNode holds everything shared by the node's components: the config,
// the HTTP surface, the metrics collector and the process supervisor.
type JudgerNode struct {
	Config  *config.Config
	Router  *gin.Engine
	Metrics *metrics.Collector

	processes []func()
	defers    []func()

	StopCtx  context.Context
	stopFunc context.CancelFunc
	stopWG   sync.WaitGroup
}

func InitJudgerNode(configPath string) *JudgerNode {
	node := &JudgerNode{
		Config: config.ReadConfig(configPath),
	}
	logger.InitLogger(node.Config.Logger)

	node.Metrics = metrics.NewCollector()
	node.initServer()

	return node
}

// AddProcess registers a long-running loop started by Run.
func (node *JudgerNode) AddProcess(f func()) {
	node.processes = append(node.processes, f)
}

// AddDefer registers a cleanup executed after all processes have stopped.
func (node *JudgerNode) AddDefer(f func()) {
	node.defers = append(node.defers, f)
}

func (node *JudgerNode) Run() {
	var ctx context.Context
	var cancel context.CancelFunc
	ctx, node.stopFunc = context.WithCancel(context.Background())
	node.StopCtx, cancel = signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	for _, process := range node.processes {
		node.Go(process)
	}

	node.runServer()

	node.stopWG.Wait()

	for _, d := range node.defers {
		d()
	}
}

// Go runs f in a supervised goroutine: a panic stops the whole node
// gracefully instead of crashing it.
func (node *JudgerNode) Go(f func()) {
	node.stopWG.Add(1)
	go node.runProcess(f)
}

func (node *JudgerNode) runProcess(f func()) {
	defer func() {
		v := recover()
		if v != nil {
			logger.Error("One process got panic: %v, shutting down all processes gracefully", v)
			node.stopFunc()
		}
		node.stopWG.Done()
	}()

	f()
}
