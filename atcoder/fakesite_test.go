package atcoder

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"atcoder_judger/common/config"

	"github.com/xorcare/pointer"
)

const sessionCookie = "fake_session"

// fakeSite is a minimal stand-in for the remote judge: login with a csrf
// token, task pages, the submit endpoint and submission detail pages, all
// rendered with just enough markup to satisfy the fixed lookup paths.
type fakeSite struct {
	mu sync.Mutex

	password   string
	loginToken string
	taskToken  string
	nextSubID  string

	brokenSubmitPage bool
	brokenLoginForm  bool
	detailPages      map[string]string
	detailStatusCode int

	loginPosts  int
	submitPosts int
	lastSubmit  url.Values

	server *httptest.Server
}

func newFakeSite(t *testing.T) *fakeSite {
	site := &fakeSite{
		password:    "correct horse",
		loginToken:  "login-csrf-token",
		taskToken:   "task-csrf-token",
		nextSubID:   "555",
		detailPages: make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/settings", site.handleSettings)
	mux.HandleFunc("/login", site.handleLogin)
	mux.HandleFunc("/home", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/contests/", site.handleContests)

	site.server = httptest.NewServer(mux)
	t.Cleanup(site.server.Close)
	return site
}

func (site *fakeSite) url() string {
	return site.server.URL
}

func (site *fakeSite) config() *config.AtCoderConfig {
	cfg := &config.AtCoderConfig{
		Username: "judgebot",
		Password: site.password,
	}
	config.FillInAtCoderConfig(cfg)
	cfg.BaseURL = pointer.String(site.url())
	return cfg
}

func (site *fakeSite) setDetail(contestID, submissionID, page string) {
	site.mu.Lock()
	defer site.mu.Unlock()
	site.detailPages[contestID+"/"+submissionID] = page
}

func (site *fakeSite) counts() (loginPosts, submitPosts int) {
	site.mu.Lock()
	defer site.mu.Unlock()
	return site.loginPosts, site.submitPosts
}

func (site *fakeSite) submittedForm() url.Values {
	site.mu.Lock()
	defer site.mu.Unlock()
	return site.lastSubmit
}

func (site *fakeSite) authenticated(r *http.Request) bool {
	cookie, err := r.Cookie(sessionCookie)
	return err == nil && cookie.Value == "ok"
}

func (site *fakeSite) handleSettings(w http.ResponseWriter, r *http.Request) {
	if !site.authenticated(r) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	fmt.Fprint(w, "<html><body>settings</body></html>")
}

func (site *fakeSite) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if site.brokenLoginForm {
			fmt.Fprint(w, "<html><body>maintenance</body></html>")
			return
		}
		fmt.Fprint(w, loginPageHTML(site.loginToken))
		return
	}

	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	site.mu.Lock()
	site.loginPosts++
	ok := r.PostFormValue("csrf_token") == site.loginToken &&
		r.PostFormValue("password") == site.password
	site.mu.Unlock()

	if ok {
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "ok", Path: "/"})
	}
	http.Redirect(w, r, "/home", http.StatusFound)
}

func (site *fakeSite) handleContests(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// contests/{contest}/{tasks|submit|submissions}/...
	if len(parts) < 3 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	contestID := parts[1]

	switch parts[2] {
	case "tasks":
		fmt.Fprint(w, taskPageHTML(site.taskToken))
	case "submit":
		site.handleSubmit(w, r, contestID)
	case "submissions":
		if len(parts) < 4 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		site.handleSubmissionDetail(w, contestID, parts[3])
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (site *fakeSite) handleSubmit(w http.ResponseWriter, r *http.Request, contestID string) {
	if !site.authenticated(r) {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	site.mu.Lock()
	site.submitPosts++
	site.lastSubmit = r.PostForm
	broken := site.brokenSubmitPage || r.PostFormValue("csrf_token") != site.taskToken
	subID := site.nextSubID
	site.mu.Unlock()

	if broken {
		fmt.Fprint(w, "<html><body>submission rejected</body></html>")
		return
	}
	fmt.Fprint(w, submissionsPageHTML(contestID, subID))
}

func (site *fakeSite) handleSubmissionDetail(w http.ResponseWriter, contestID, submissionID string) {
	site.mu.Lock()
	page, ok := site.detailPages[contestID+"/"+submissionID]
	code := site.detailStatusCode
	site.mu.Unlock()

	if code != 0 {
		w.WriteHeader(code)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	fmt.Fprint(w, page)
}

// Page builders. The markup is the minimal skeleton the fixed selectors
// expect, mirroring the layout of the real pages.

func loginPageHTML(token string) string {
	return `<html><body><div id="main-container"><div class="row"><div>` +
		fmt.Sprintf(`<form action="/login" method="post"><input type="hidden" name="csrf_token" value="%s"></form>`, token) +
		`</div></div></div></body></html>`
}

func taskPageHTML(token string) string {
	return `<html><body><div id="task-statement">statement</div>` +
		fmt.Sprintf(`<form><input type="hidden" name="csrf_token" value="%s"></form>`, token) +
		`</body></html>`
}

func submissionsPageHTML(contestID, submissionID string) string {
	row := `<tr>` + strings.Repeat(`<td></td>`, 7) +
		fmt.Sprintf(`<td><a href="/contests/%s/submissions/%s">Detail</a></td></tr>`, contestID, submissionID)
	panel := `<div class="panel panel-default panel-submission"><div class="table-responsive">` +
		`<table><tbody>` + row + `</tbody></table></div></div>`
	return `<html><body><div id="main-container"><div class="row">` +
		`<div></div><div></div><div>` + panel + `</div>` +
		`</div></div></body></html>`
}

func detailPageHTML(status, user, problem, submitTime, runTime, memory string) string {
	rows := []string{
		fmt.Sprintf(`<tr><td><time>%s</time></td></tr>`, submitTime),
		fmt.Sprintf(`<tr><td><a>%s</a></td></tr>`, problem),
		fmt.Sprintf(`<tr><td><a>%s</a><a>history</a></td></tr>`, user),
		`<tr><td>C++ (GCC 5.4.1)</td></tr>`,
		`<tr><td>0</td></tr>`,
		`<tr><td>1234 Byte</td></tr>`,
		fmt.Sprintf(`<tr><td><span>%s</span></td></tr>`, status),
		fmt.Sprintf(`<tr><td>%s</td></tr>`, runTime),
		fmt.Sprintf(`<tr><td>%s</td></tr>`, memory),
	}
	table := `<table><tbody>` + strings.Join(rows, "") + `</tbody></table>`
	detail := `<div><div></div><div></div><div></div><div></div><div></div><div>` + table + `</div></div>`
	return `<html><body><div id="main-container"><div class="row">` +
		`<div></div>` + detail +
		`</div></div></body></html>`
}

// detailPagePartialHTML renders a detail page whose result table is not
// there yet, as the site does right after submitting.
func detailPagePartialHTML() string {
	return `<html><body><div id="main-container"><div class="row">` +
		`<div></div><div><div></div></div>` +
		`</div></div></body></html>`
}
