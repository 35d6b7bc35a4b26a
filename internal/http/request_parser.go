// This file implements parsing of the multipart upload request. It
// keeps the handler free of transport details: the caller gets the
// original filename and raw bytes, or an error.

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

var errNoFile = errors.New("no file in request")

// parseUploadRequest extracts the uploaded workbook from a multipart
// form. The body is capped at maxBytes before parsing.
func parseUploadRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (filename string, data []byte, err error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", errNoFile, err)
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}

	filename = sanitizeFilename(header.Filename)
	if filename == "" {
		filename = "upload.xlsx"
	}
	return filename, data, nil
}

// sanitizeFilename strips path components and control characters from
// a client-supplied filename so it is safe to echo back in headers.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, `\`, "_")
	name = strings.ReplaceAll(name, `"`, "_")
	name = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, name)
	if name == "." || name == ".." || name == "/" {
		return ""
	}
	return name
}
