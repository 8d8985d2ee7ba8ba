// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package form

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// CaptionSuffix is appended to a file field's name to form the name of
// its caption field.
const CaptionSuffix = "Captions"

const defaultFileContentType = "application/octet-stream"

// A File is a file entry in a Form.
type File struct {
	// Name is the file name reported to the backend.
	Name string
	// ContentType is the media type of Data. If empty,
	// application/octet-stream is sent.
	ContentType string
	// Data is the file content.
	Data []byte
	// Caption is the user-supplied caption. WithCaptions copies it into
	// the field's caption field.
	Caption string
}

// NewFile reads r to the end and returns a File holding its content.
// If r is an io.Closer it is closed after reading.
func NewFile(name, caption string, r io.Reader) (*File, error) {
	b, err := io.ReadAll(r)
	if c, ok := r.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return nil, err
	}
	return &File{Name: name, Data: b, Caption: caption}, nil
}

// An Entry is one field of a Form. Exactly one of Value and File is
// meaningful: if File is non-nil the entry is a file entry.
type Entry struct {
	Name  string
	Value string
	File  *File
}

// IsFile reports whether e is a file entry.
func (e Entry) IsFile() bool {
	return e.File != nil
}

// A Form is an ordered list of multipart fields. A field name may
// repeat. The zero value is an empty form ready to use.
//
// A Form is not safe for concurrent modification.
type Form struct {
	entries []Entry
}

// Append adds a plain string field.
func (f *Form) Append(name, value string) {
	f.entries = append(f.entries, Entry{Name: name, Value: value})
}

// AppendFile adds a file field. It panics if file is nil.
func (f *Form) AppendFile(name string, file *File) {
	if file == nil {
		panic("panelx/form: nil file")
	}
	f.entries = append(f.entries, Entry{Name: name, File: file})
}

// Len returns the number of entries in f.
func (f *Form) Len() int {
	return len(f.entries)
}

// Entries returns a copy of the entries of f, in order.
func (f *Form) Entries() []Entry {
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Get returns the first entry named name.
func (f *Form) Get(name string) (Entry, bool) {
	for _, e := range f.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// GetAll returns every entry named name, in order.
func (f *Form) GetAll(name string) []Entry {
	var out []Entry
	for _, e := range f.entries {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns a copy of f. File values are shared.
func (f *Form) Clone() *Form {
	return &Form{entries: f.Entries()}
}

// FileFields returns the distinct names of the fields holding at least
// one file, in order of first appearance.
func (f *Form) FileFields() []string {
	var names []string
	seen := make(map[string]bool)
	for _, e := range f.entries {
		if e.IsFile() && !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	return names
}

// WithCaptions returns a copy of f in which, for every field holding a
// file, one "<field>Captions" entry per file entry of that field has
// been appended, carrying the file's caption. Non-file fields are left
// untouched and f itself is not modified.
func (f *Form) WithCaptions() *Form {
	g := f.Clone()
	for _, name := range f.FileFields() {
		for _, e := range f.entries {
			if e.Name == name && e.IsFile() {
				g.Append(name+CaptionSuffix, e.File.Caption)
			}
		}
	}
	return g
}

// Encode encodes f as a multipart/form-data body. It returns the body
// and the Content-Type header value, which carries the boundary.
func (f *Form) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, e := range f.entries {
		if err := writeEntry(w, e); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func writeEntry(w *multipart.Writer, e Entry) error {
	if !e.IsFile() {
		return w.WriteField(e.Name, e.Value)
	}

	contentType := e.File.ContentType
	if contentType == "" {
		contentType = defaultFileContentType
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(e.Name), escapeQuotes(e.File.Name)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(e.File.Data)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// escapeQuotes is lifted from mime/multipart/writer.go.
func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
