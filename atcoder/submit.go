package atcoder

import (
	"fmt"
	"strings"
)

// Submit performs the submission protocol for one solution and returns the
// run identifier "{contestID}_{remoteSubmissionID}".
//
// The submit form wants an anti-forgery token from the task page, so the
// task page is fetched first; like the login token it cannot be reused
// between submissions.
func (s *Session) Submit(problemID string, source string, languageCode string) (string, error) {
	if languageCode == "" {
		return "", ErrLanguageRejected
	}
	contestID, _, found := strings.Cut(problemID, "_")
	if !found {
		return "", fmt.Errorf("%w: problem id %q has no contest prefix", ErrSubmitFailed, problemID)
	}

	taskURL := fmt.Sprintf("%s/contests/%s/tasks/%s", s.baseURL, contestID, problemID)
	resp, err := s.client.R().
		SetHeader("Referer", s.baseURL+"/").
		Get(fmt.Sprintf("/contests/%s/tasks/%s", contestID, problemID))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("task page returned %s", resp.Status())
	}
	taskPage, err := parsePage(resp.Body())
	if err != nil {
		return "", err
	}
	token, ok := taskPage.attr(taskTokenSelector, "value")
	if !ok {
		return "", fmt.Errorf("%w: no csrf token on the task page", ErrSubmitFailed)
	}

	resp, err = s.client.R().
		SetHeader("Origin", s.baseURL).
		SetHeader("Referer", taskURL).
		SetFormData(map[string]string{
			"data.TaskScreenName": problemID,
			"data.LanguageId":     languageCode,
			"sourceCode":          source,
			"csrf_token":          token,
		}).
		Post(fmt.Sprintf("/contests/%s/submit", contestID))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("submit returned %s", resp.Status())
	}

	listing, err := parsePage(resp.Body())
	if err != nil {
		return "", err
	}

	// The newest submission is the first row of the submissions table.
	href, ok := listing.attr(submissionLinkSelector, "href")
	if !ok {
		return "", fmt.Errorf("%w: no submission row on the confirmation page", ErrSubmitFailed)
	}
	match := submissionIDPattern.FindStringSubmatch(href)
	if match == nil {
		return "", fmt.Errorf("%w: unexpected submission link %q", ErrSubmitFailed, href)
	}

	return contestID + "_" + match[1], nil
}
