package atcoder

import (
	"errors"
	"fmt"
	"os"

	"atcoder_judger/common/constants/verdict"
	"atcoder_judger/lib/logger"
)

// Handle is the single operation the host orchestrator invokes: validate the
// submission, send it to the remote judge and start tracking it. Every
// failure is delivered through update as a JudgementFailed result; Handle
// itself never fails.
func (j *Judger) Handle(problem *Problem, solution *Solution, resolve Resolver, update UpdateFunc) {
	if update == nil {
		return
	}
	if problem == nil || problem.ID == "" {
		update(failure("Invalid problem"))
		return
	}
	if solution == nil || solution.Language == "" || resolve == nil {
		update(failure("Invalid solution"))
		return
	}

	languageCode, ok := LanguageCode(solution.Language)
	if !ok {
		update(failure("Language rejected"))
		return
	}

	source, err := j.readSource(solution, resolve)
	if err != nil {
		if errors.Is(err, ErrSourceTooLarge) {
			update(failure("File is too big"))
		} else {
			// The underlying error is intentionally not forwarded to
			// the host; it only reaches the node log.
			logger.Warn("can not read solution source: %v", err)
			update(failure("Invalid solution"))
		}
		return
	}

	if err := j.session.EnsureLoggedIn(); err != nil {
		logger.Warn("authentication failed: %v", err)
		update(failure(err.Error()))
		return
	}

	runID, err := j.session.Submit(problem.ID, source, languageCode)
	if err != nil {
		logger.Warn("submitting %s failed: %v", problem.ID, err)
		update(failure("Invalid solution"))
		return
	}

	j.node.Metrics.SubmissionsCount.WithLabelValues(solution.Language).Inc()
	logger.Info("submitted %s, tracking as %s", problem.ID, runID)
	j.tracker.Register(runID, update)
}

// readSource resolves and reads the solution source. The size is checked on
// the stat result first, so an oversized file is rejected without reading
// its content.
func (j *Judger) readSource(solution *Solution, resolve Resolver) (string, error) {
	file, err := resolve(solution.File)
	if err != nil {
		return "", err
	}
	if file == nil || file.Path == "" {
		return "", fmt.Errorf("resolver returned no path")
	}

	info, err := os.Stat(file.Path)
	if err != nil {
		return "", err
	}
	if uint64(info.Size()) > j.maxSourceSize {
		return "", ErrSourceTooLarge
	}

	content, err := os.ReadFile(file.Path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

func failure(message string) *SolutionResult {
	return &SolutionResult{
		Status:  verdict.JF,
		Score:   0,
		Details: map[string]string{"error": message},
	}
}
