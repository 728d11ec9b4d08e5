package atcoder

import (
	"errors"

	"atcoder_judger/common"
	"atcoder_judger/lib/logger"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
)

// Judger glues the session, the tracker and the HTTP surface together and
// carries the per-node limits from the config.
type Judger struct {
	node    *common.JudgerNode
	session *Session
	tracker *Tracker

	maxSourceSize uint64
	epoch         string
}

func SetupJudger(node *common.JudgerNode) (*Judger, error) {
	cfg := &node.Config.AtCoder
	if cfg.Username == "" || cfg.Password == "" {
		return nil, errors.New("remote judge credentials are not configured")
	}

	j := &Judger{
		node:          node,
		session:       NewSession(cfg),
		maxSourceSize: cfg.MaxSourceSize.Val(),
		epoch:         uuid.New().String(),
	}
	j.session.OnLogin = node.Metrics.LoginsCount.Inc
	j.tracker = NewTracker(j.session, cfg.PollInterval.Duration(), node.Metrics)

	node.AddProcess(func() { j.tracker.RunLoop(node.StopCtx) })
	if *cfg.LoginOnStartup {
		node.AddProcess(j.warmUpSession)
	}

	node.Router.GET("/judger/status", j.handleStatus)

	return j, nil
}

// warmUpSession logs in eagerly at startup, retrying transient failures with
// exponential backoff. A definitive rejection of the credentials is not
// retried; the next Handle call will surface it to its caller.
func (j *Judger) warmUpSession() {
	_, err := backoff.Retry(
		j.node.StopCtx,
		func() (*struct{}, error) {
			err := j.session.EnsureLoggedIn()
			if errors.Is(err, ErrAuthFailed) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
	)
	if err != nil {
		logger.Error("session warm-up failed: %v", err)
		return
	}
	logger.Info("session warm-up done")
}
