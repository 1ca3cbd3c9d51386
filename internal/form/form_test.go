package form_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/raysh454/soshin/internal/form"
)

const loginPage = `<!DOCTYPE html>
<html>
<body>
  <form id="login-form" action="/api/login" method="post">
    <input type="text" id="username" name="username" value="sam">
    <input type="password" id="password" name="password" value="hunter2">
    <button type="submit">Log in</button>
  </form>
</body>
</html>`

const clickVariantPage = `<!DOCTYPE html>
<html>
<body>
  <form id="login-form">
    <input type="hidden" name="url" value="http://api.example.test/login">
    <input type="text" id="username" name="username">
    <input type="password" id="password" name="password">
    <button id="submit-btn" type="button">Log in</button>
  </form>
</body>
</html>`

func TestParse_FindsLoginForm(t *testing.T) {
	t.Parallel()
	doc, err := form.Parse(strings.NewReader(loginPage))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	f, err := doc.FirstForm()
	if err != nil {
		t.Fatalf("FirstForm: %v", err)
	}
	if f.ID != "login-form" {
		t.Errorf("expected id login-form, got %q", f.ID)
	}
	if f.Method != "POST" {
		t.Errorf("expected POST, got %q", f.Method)
	}
	if len(f.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d: %+v", len(f.Fields), f.Fields)
	}
	if fld, ok := f.Field("password"); !ok || fld.Type != "password" {
		t.Errorf("expected password field, got %+v ok=%v", fld, ok)
	}
}

func TestFieldValue_LookupByIdentifier(t *testing.T) {
	t.Parallel()
	doc, err := form.Parse(strings.NewReader(loginPage))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if v, ok := doc.FieldValue("#username"); !ok || v != "sam" {
		t.Errorf("expected #username=sam, got %q ok=%v", v, ok)
	}
	if v, ok := doc.FieldValue("#password"); !ok || v != "hunter2" {
		t.Errorf("expected #password=hunter2, got %q ok=%v", v, ok)
	}
	if _, ok := doc.FieldValue("#missing"); ok {
		t.Error("expected lookup miss for #missing")
	}
}

func TestSubmitURL_ActionResolvedAgainstBase(t *testing.T) {
	t.Parallel()
	doc, _ := form.Parse(strings.NewReader(loginPage))
	f, _ := doc.FirstForm()

	base, _ := url.Parse("http://demo.test:9999/login")
	got, err := f.SubmitURL(base)
	if err != nil {
		t.Fatalf("SubmitURL: %v", err)
	}
	if got != "http://demo.test:9999/api/login" {
		t.Errorf("unexpected submit URL %q", got)
	}
}

func TestSubmitURL_URLFieldWinsOverAction(t *testing.T) {
	t.Parallel()
	doc, _ := form.Parse(strings.NewReader(clickVariantPage))
	f, _ := doc.FirstForm()

	base, _ := url.Parse("http://demo.test:9999/login")
	got, err := f.SubmitURL(base)
	if err != nil {
		t.Fatalf("SubmitURL: %v", err)
	}
	if got != "http://api.example.test/login" {
		t.Errorf("expected the url field to win, got %q", got)
	}
}

func TestSubmitURL_NeitherPresent_ReturnsError(t *testing.T) {
	t.Parallel()
	doc, _ := form.Parse(strings.NewReader(`<form id="f"><input name="username"></form>`))
	f, _ := doc.FirstForm()

	if _, err := f.SubmitURL(nil); err != form.ErrNoSubmitURL {
		t.Errorf("expected ErrNoSubmitURL, got %v", err)
	}
}

func TestFirstForm_NoForm_ReturnsError(t *testing.T) {
	t.Parallel()
	doc, _ := form.Parse(strings.NewReader(`<html><body><p>nothing here</p></body></html>`))
	if _, err := doc.FirstForm(); err != form.ErrNoForm {
		t.Errorf("expected ErrNoForm, got %v", err)
	}
}
