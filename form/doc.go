// Copyright 2026 The panelx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package form provides Form, an ordered multipart field container whose
entries are either plain string values or files, and the caption
transform applied to it before an upload is sent.

A file-input widget collects files and a caption for each one. The
backend expects the captions as sibling fields, so before the form is
encoded every field that holds at least one file gains a companion
"<field>Captions" field per file, in file order:

	f := &form.Form{}
	f.Append("refId", "12")
	f.AppendFile("files", &form.File{Name: "a.png", Data: a, Caption: "logo"})
	f.AppendFile("files", &form.File{Name: "b.png", Data: b, Caption: "banner"})
	g := f.WithCaptions()
	// g: refId=12, files=a.png, files=b.png, filesCaptions=logo, filesCaptions=banner

Captions accompany the file fields; they never replace them.
*/
package form
