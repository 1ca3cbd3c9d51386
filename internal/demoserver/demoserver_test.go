package demoserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raysh454/soshin/internal/demoserver"
	"github.com/raysh454/soshin/internal/testutil"
)

func newTestServer(t *testing.T) *demoserver.DemoServer {
	t.Helper()

	cfg := demoserver.DefaultConfig()
	cfg.Logger = &testutil.DummyLogger{}

	s, err := demoserver.NewDemoServer(cfg)
	if err != nil {
		t.Fatalf("NewDemoServer: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func doJSON(t *testing.T, s http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestLogin_Success_ReturnsID(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/login", `{"username":"sam","password":"hunter2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if resp["id"] == "" {
		t.Error("expected a non-empty submission id")
	}
}

func TestLogin_InvalidJSON_Returns400(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/login", `not json at all`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogin_ModeControlsFailureBehavior(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	cases := []struct {
		mode demoserver.Mode
		want int
	}{
		{demoserver.ModeNotFound, http.StatusNotFound},
		{demoserver.ModeError, http.StatusInternalServerError},
		{demoserver.ModeOK, http.StatusOK},
	}

	for _, tc := range cases {
		rec := doJSON(t, s, http.MethodPost, "/demo/set-mode?mode="+string(tc.mode), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("set-mode %s: got %d", tc.mode, rec.Code)
		}

		rec = doJSON(t, s, http.MethodPost, "/api/login", `{"username":"sam"}`)
		if rec.Code != tc.want {
			t.Errorf("mode %s: expected %d, got %d", tc.mode, tc.want, rec.Code)
		}
	}
}

func TestSetMode_UnknownMode_Returns400(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/demo/set-mode?mode=flaky", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetMode_ReflectsCurrentMode(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	s.SetMode(demoserver.ModeError)

	rec := doJSON(t, s, http.MethodGet, "/demo/get-mode", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("expected mode error, got %s", rec.Body.String())
	}
}

func TestListSubmissions_ReturnsStoredSubmissions(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, user := range []string{"sam", "alex"} {
		rec := doJSON(t, s, http.MethodPost, "/api/login", `{"username":"`+user+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("login %s: got %d", user, rec.Code)
		}
	}

	rec := doJSON(t, s, http.MethodGet, "/api/submissions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var subs []demoserver.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &subs); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(subs))
	}
	// Newest first
	if subs[0].Username != "alex" || subs[1].Username != "sam" {
		t.Errorf("unexpected ordering: %+v", subs)
	}
}

func TestSubmissionDiff_ShowsChangeAgainstPrevious(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	doJSON(t, s, http.MethodPost, "/api/login", `{"username":"sam","password":"first"}`)
	rec := doJSON(t, s, http.MethodPost, "/api/login", `{"username":"sam","password":"second"}`)

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	rec = doJSON(t, s, http.MethodGet, "/api/submissions/"+resp["id"]+"/diff", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var diff map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &diff); err != nil {
		t.Fatalf("diff response is not JSON: %v", err)
	}
	if diff["previous"] == "" {
		t.Error("expected a previous submission id")
	}
	if !strings.Contains(diff["diff"], "second") {
		t.Errorf("expected diff mentioning the changed value, got %q", diff["diff"])
	}
}

func TestSubmissionDiff_UnknownID_Returns404(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/submissions/nope/diff", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestLoginPages_Served(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	for _, path := range []string{"/login", "/login/click"} {
		rec := doJSON(t, s, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `id="login-form"`) {
			t.Errorf("%s: expected a login form", path)
		}
	}
}

func TestSubmissionsWS_StreamsReceivedSubmissions(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)

	ts := httptest.NewServer(s)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/submissions"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	defer conn.Close()

	resp, err := http.Post(ts.URL+"/api/login", "application/json",
		strings.NewReader(`{"username":"sam"}`))
	if err != nil {
		t.Fatalf("POST login: %v", err)
	}
	resp.Body.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var sub demoserver.Submission
	if err := conn.ReadJSON(&sub); err != nil {
		t.Fatalf("read websocket message: %v", err)
	}
	if sub.Username != "sam" {
		t.Errorf("expected streamed submission for sam, got %+v", sub)
	}
}
