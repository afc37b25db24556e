package seeder

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"uni-seeder/internal/config/env"
)

type recordedCall struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

// recorder sits in front of a remote and keeps every request it forwards.
type recorder struct {
	URL    string
	mu     sync.Mutex
	calls  []recordedCall
	before func(recordedCall)
}

func newRecorder(t *testing.T, target string) *recorder {
	t.Helper()
	upstream, err := url.Parse(target)
	require.NoError(t, err)
	proxy := httputil.NewSingleHostReverseProxy(upstream)

	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(raw))

		call := recordedCall{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization")}
		_ = json.Unmarshal(raw, &call.Body)
		rec.mu.Lock()
		rec.calls = append(rec.calls, call)
		if rec.before != nil {
			rec.before(call)
		}
		rec.mu.Unlock()

		proxy.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	rec.URL = srv.URL
	return rec
}

// filter returns the recorded calls with the given method whose path
// satisfies match.
func (r *recorder) filter(method string, match func(path string) bool) []recordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []recordedCall
	for _, c := range r.calls {
		if c.Method == method && match(c.Path) {
			out = append(out, c)
		}
	}
	return out
}

// cancelOn calls cancel as soon as the nth request matching method and match
// reaches the recorder, before it is forwarded.
func (r *recorder) cancelOn(method string, match func(string) bool, n int, cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := 0
	r.before = func(c recordedCall) {
		if c.Method == method && match(c.Path) {
			seen++
			if seen == n {
				cancel()
			}
		}
	}
}

func path(p string) func(string) bool {
	return func(got string) bool { return got == p }
}

func testConfig(baseURL string) *env.Config {
	cfg := &env.Config{}
	cfg.App.Name = "uni-seeder-test"
	cfg.API.BaseURL = baseURL

	cfg.Roster.UniversityID = "54"
	cfg.Roster.Password = "password123"
	cfg.Roster.TopicAuthors = 5
	cfg.Roster.MaxPostsPerUser = 3
	cfg.Roster.Seed = 42

	cfg.Forums.TopicsMin = 3
	cfg.Forums.TopicsMax = 5
	cfg.Forums.ResponsesMin = 1
	cfg.Forums.ResponsesMax = 3
	cfg.Forums.Seed = 42
	cfg.Forums.Admin.Email = "testforum@example.com"
	cfg.Forums.Admin.Name = "Forum Admin"
	cfg.Forums.Admin.Password = "password123"
	return cfg
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}
