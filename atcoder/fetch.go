package atcoder

import (
	"fmt"
	"strings"

	"atcoder_judger/common/constants/verdict"
	"atcoder_judger/lib/logger"
)

// Fetch checks one tracked submission. It never fails outward: every error
// is folded into a JudgementFailed result so a tracker pass can always move
// on to the next entry.
func (s *Session) Fetch(runID string) *SolutionResult {
	result, err := s.fetchResult(runID)
	if err != nil {
		logger.Warn("fetching result of %s failed: %v", runID, err)
		return &SolutionResult{
			Status: verdict.JF,
			Score:  0,
			Details: map[string]string{
				"error": err.Error(),
				"runID": runID,
			},
		}
	}
	return result
}

func (s *Session) fetchResult(runID string) (*SolutionResult, error) {
	contestID, submissionID, found := strings.Cut(runID, "_")
	if !found {
		return nil, fmt.Errorf("malformed run id %q", runID)
	}

	resp, err := s.client.R().
		SetHeader("Referer", s.baseURL+"/").
		Get(fmt.Sprintf("/contests/%s/submissions/%s", contestID, submissionID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("submission page returned %s", resp.Status())
	}
	detail, err := parsePage(resp.Body())
	if err != nil {
		return nil, err
	}

	status := ParseStatus(detail.text(detailStatusSelector))
	return &SolutionResult{
		Status: status,
		Score:  ScoreFor(status),
		Details: map[string]string{
			"runID":         runID,
			"remoteUser":    detail.text(detailUserSelector),
			"remoteProblem": detail.text(detailProblemSelector),
			"submitTime":    detail.text(detailSubmitTimeSelector),
			"memory":        detail.text(detailMemorySelector),
			"time":          detail.text(detailTimeSelector),
		},
	}, nil
}
