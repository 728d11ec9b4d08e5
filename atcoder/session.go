package atcoder

import (
	"fmt"
	"sync"
	"time"

	"atcoder_judger/common/config"
	"atcoder_judger/lib/logger"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 30 * time.Second

// Session owns the single authenticated HTTP session against the remote
// site. Cookies live in the client's jar for the whole process lifetime;
// there is no teardown and no multi-account support.
type Session struct {
	client  *resty.Client
	baseURL string

	username string
	password string

	// loginMutex serializes login attempts: concurrent Handle calls that
	// both observe an unauthenticated session share one login instead of
	// racing duplicate logins against the remote site.
	loginMutex sync.Mutex

	// OnLogin, when set, is invoked after every successful login.
	OnLogin func()
}

func NewSession(cfg *config.AtCoderConfig) *Session {
	client := resty.New().
		SetBaseURL(*cfg.BaseURL).
		SetHeader("User-Agent", *cfg.UserAgent).
		SetTimeout(requestTimeout)

	return &Session{
		client:   client,
		baseURL:  *cfg.BaseURL,
		username: cfg.Username,
		password: cfg.Password,
	}
}

// LoggedIn checks authentication by requesting the account settings page.
// The site redirects unauthenticated clients to the login page, so the
// session is authenticated exactly when no redirect happened.
func (s *Session) LoggedIn() (bool, error) {
	resp, err := s.client.R().Get("/settings")
	if err != nil {
		return false, err
	}
	return resp.RawResponse.Request.URL.Path == "/settings", nil
}

// Login performs the login protocol: fetch the login form, pull the one-time
// anti-forgery token out of it and post the credentials together with the
// token. The token is single-use and page-scoped, so it is read fresh on
// every attempt.
func (s *Session) Login() error {
	resp, err := s.client.R().Get("/login")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("login page returned %s", resp.Status())
	}
	loginPage, err := parsePage(resp.Body())
	if err != nil {
		return err
	}
	token, ok := loginPage.attr(loginTokenSelector, "value")
	if !ok {
		return fmt.Errorf("%w: no csrf token on the login form", ErrAuthFailed)
	}

	logger.Debug("logging in to %s as %s", s.baseURL, s.username)

	resp, err = s.client.R().
		SetHeader("Referer", s.baseURL+"/login").
		SetHeader("Origin", s.baseURL).
		SetFormData(map[string]string{
			"username":   s.username,
			"password":   s.password,
			"csrf_token": token,
		}).
		Post("/login")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("login returned %s", resp.Status())
	}

	loggedIn, err := s.LoggedIn()
	if err != nil {
		return err
	}
	if !loggedIn {
		return ErrAuthFailed
	}

	logger.Info("logged in to %s as %s", s.baseURL, s.username)
	if s.OnLogin != nil {
		s.OnLogin()
	}
	return nil
}

// EnsureLoggedIn logs in if the session is not authenticated yet.
func (s *Session) EnsureLoggedIn() error {
	s.loginMutex.Lock()
	defer s.loginMutex.Unlock()

	loggedIn, err := s.LoggedIn()
	if err != nil {
		return err
	}
	if loggedIn {
		return nil
	}
	return s.Login()
}
