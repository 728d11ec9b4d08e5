package atcoder

import "errors"

var (
	// ErrAuthFailed means the login protocol completed but the session is
	// still not authenticated.
	ErrAuthFailed = errors.New("login failed")

	// ErrLanguageRejected means the logical language name has no remote
	// language code.
	ErrLanguageRejected = errors.New("language rejected")

	// ErrSourceTooLarge means the solution file exceeds the size ceiling.
	// The file content is never read in that case.
	ErrSourceTooLarge = errors.New("file is too big")

	// ErrSubmitFailed means the submission confirmation page did not
	// contain the expected result row.
	ErrSubmitFailed = errors.New("submit failed")
)
