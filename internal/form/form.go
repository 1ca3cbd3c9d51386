// Package form extracts submit-relevant structure from workshop pages:
// the forms they contain, the fields inside each form, and the URL a
// submission should target.
package form

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	ErrNoForm      = errors.New("page contains no form")
	ErrNoSubmitURL = errors.New("form carries no submit URL")
)

// Document is a parsed HTML page.
type Document struct {
	doc *goquery.Document
}

// Form is one form element on a page.
type Form struct {
	ID     string
	Action string
	Method string
	Fields []Field

	sel *goquery.Selection
}

// Field is an input (or textarea/select) inside a form.
type Field struct {
	Name  string
	ID    string
	Type  string
	Value string
}

// Parse reads HTML from r. Parsing is lenient the way browsers are;
// only a read failure or catastrophically broken input errors out.
func Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(node)}, nil
}

// Forms returns every form on the page in document order.
func (d *Document) Forms() []*Form {
	var forms []*Form
	d.doc.Find("form").Each(func(_ int, sel *goquery.Selection) {
		f := &Form{
			ID:     sel.AttrOr("id", ""),
			Action: sel.AttrOr("action", ""),
			Method: strings.ToUpper(sel.AttrOr("method", "GET")),
			sel:    sel,
		}
		sel.Find("input, textarea, select").Each(func(_ int, in *goquery.Selection) {
			f.Fields = append(f.Fields, Field{
				Name:  in.AttrOr("name", ""),
				ID:    in.AttrOr("id", ""),
				Type:  in.AttrOr("type", ""),
				Value: in.AttrOr("value", ""),
			})
		})
		forms = append(forms, f)
	})
	return forms
}

// FirstForm returns the first form on the page, or ErrNoForm.
func (d *Document) FirstForm() (*Form, error) {
	forms := d.Forms()
	if len(forms) == 0 {
		return nil, ErrNoForm
	}
	return forms[0], nil
}

// FieldValue looks up an element by CSS selector (typically an id
// selector like "#username") and returns its value attribute.
func (d *Document) FieldValue(selector string) (string, bool) {
	sel := d.doc.Find(selector)
	if sel.Length() == 0 {
		return "", false
	}
	return sel.First().AttrOr("value", ""), true
}

// Field returns the form's field with the given name, if present.
func (f *Form) Field(name string) (Field, bool) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld, true
		}
	}
	return Field{}, false
}

// SubmitURL resolves where a submission of this form should go. A
// URL-bearing named field (input name="url") takes precedence over the
// form's action attribute; both are resolved against base. When the
// form carries neither, ErrNoSubmitURL is returned and the caller's
// configured endpoint applies.
func (f *Form) SubmitURL(base *url.URL) (string, error) {
	raw := ""
	if fld, ok := f.Field("url"); ok && fld.Value != "" {
		raw = fld.Value
	} else if f.Action != "" {
		raw = f.Action
	}
	if raw == "" {
		return "", ErrNoSubmitURL
	}

	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse submit URL %q: %w", raw, err)
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	return ref.String(), nil
}
