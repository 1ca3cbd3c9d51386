package browser_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/raysh454/soshin/internal/browser"
	"github.com/raysh454/soshin/internal/testutil"
)

// Requires a local Chrome/Chromium; set SOSHIN_BROWSER_TESTS=1 to run.
func requireBrowser(t *testing.T) {
	t.Helper()
	if os.Getenv("SOSHIN_BROWSER_TESTS") == "" {
		t.Skip("set SOSHIN_BROWSER_TESTS=1 to run browser tests")
	}
}

const browserLoginPage = `<!DOCTYPE html>
<html>
<body>
  <form id="login-form">
    <input type="text" id="username" name="username">
    <input type="password" id="password" name="password">
    <button id="submit-btn" type="button">Log in</button>
  </form>
  <script>
    document.getElementById("submit-btn").addEventListener("click", () => {
      fetch("/api/login", {
        method: "POST",
        headers: {"Content-Type": "application/json"},
        body: JSON.stringify({
          username: document.getElementById("username").value,
          password: document.getElementById("password").value,
        }),
      });
    });
  </script>
</body>
</html>`

func newBrowserTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, browserLoginPage)
	})
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "499", "username": payload["username"]})
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestSubmitter_Submit_CapturesAPIResponse(t *testing.T) {
	requireBrowser(t)
	ts := newBrowserTestServer(t)

	sub := browser.NewSubmitter(browser.Config{}, &testutil.DummyLogger{})
	resp, err := sub.Submit(context.Background(), ts.URL+"/login", map[string]string{
		"#username": "sam",
		"#password": "hunter2",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if resp.StatusCode != 200 {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	var got map[string]string
	if err := json.Unmarshal(resp.Body, &got); err != nil {
		t.Fatalf("response is not JSON: %v (%q)", err, resp.Body)
	}
	if got["id"] != "499" || got["username"] != "sam" {
		t.Errorf("unexpected response %v", got)
	}
}

func TestClient_Get_RendersPage(t *testing.T) {
	requireBrowser(t)
	ts := newBrowserTestServer(t)

	client := browser.NewClient(browser.Config{}, &testutil.DummyLogger{})
	defer client.Close()

	resp, err := client.Get(context.Background(), ts.URL+"/login")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(resp.Body) == 0 {
		t.Error("expected rendered HTML")
	}
}
