// This file implements a small builder for HTMX responses: HX-Trigger
// headers plus a consistent shape for success and error fragments.

package http

import (
	"encoding/json"
	"html/template"
	"net/http"
)

// HTMXResponseBuilder provides a fluent API for building HTMX responses.
type HTMXResponseBuilder struct {
	triggers   map[string]interface{}
	statusCode int
	body       []byte
	headers    map[string]string
}

// NewHTMXResponse creates a new response builder with default 200 status.
func NewHTMXResponse() *HTMXResponseBuilder {
	return &HTMXResponseBuilder{
		triggers:   make(map[string]interface{}),
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

// Status sets the HTTP status code for the response.
func (b *HTMXResponseBuilder) Status(code int) *HTMXResponseBuilder {
	b.statusCode = code
	return b
}

// Trigger adds a named trigger with optional data to the HX-Trigger header.
func (b *HTMXResponseBuilder) Trigger(name string, data interface{}) *HTMXResponseBuilder {
	b.triggers[name] = data
	return b
}

// Header sets an additional response header.
func (b *HTMXResponseBuilder) Header(key, value string) *HTMXResponseBuilder {
	b.headers[key] = value
	return b
}

// Body sets a pre-rendered HTML body.
func (b *HTMXResponseBuilder) Body(body []byte) *HTMXResponseBuilder {
	b.body = body
	return b
}

// ErrorBody sets an error fragment with the given user-visible message.
func (b *HTMXResponseBuilder) ErrorBody(message string) *HTMXResponseBuilder {
	b.body = []byte(`<div class="error">` + template.HTMLEscapeString(message) + `</div>`)
	return b
}

// Write renders headers, triggers and the body to the response writer.
func (b *HTMXResponseBuilder) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for key, value := range b.headers {
		w.Header().Set(key, value)
	}
	if len(b.triggers) > 0 {
		if payload, err := json.Marshal(b.triggers); err == nil {
			w.Header().Set("HX-Trigger", string(payload))
		}
	}
	w.WriteHeader(b.statusCode)
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}
