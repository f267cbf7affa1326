package ui

import (
	"net/http"
	"net/url"
)

// PageURLBuilder provides a fluent interface for building page URLs,
// mainly for redirects that carry a one-shot notification.
type PageURLBuilder struct {
	path   string
	params url.Values
}

// NewPageURL creates a new URL builder for the given page path
func NewPageURL(path string) *PageURLBuilder {
	if path == "" {
		path = "/"
	}
	return &PageURLBuilder{
		path:   path,
		params: make(url.Values),
	}
}

// WithFlash attaches a success notification
func (b *PageURLBuilder) WithFlash(message string) *PageURLBuilder {
	if message != "" {
		b.params.Set("flash", message)
		b.params.Del("error")
	}
	return b
}

// WithError attaches an error notification
func (b *PageURLBuilder) WithError(message string) *PageURLBuilder {
	if message != "" {
		b.params.Set("error", message)
		b.params.Del("flash")
	}
	return b
}

// WithParam sets an arbitrary parameter
func (b *PageURLBuilder) WithParam(key, value string) *PageURLBuilder {
	if key != "" {
		b.params.Set(key, value)
	}
	return b
}

// String builds and returns the final URL
func (b *PageURLBuilder) String() string {
	if len(b.params) == 0 {
		return b.path
	}
	return b.path + "?" + b.params.Encode()
}

// Flash is a one-shot notification carried across a redirect
type Flash struct {
	Message string
	IsError bool
}

// flashFromRequest reads the notification parameters of the current
// request. An error wins over a success message.
func flashFromRequest(r *http.Request) Flash {
	if msg := r.URL.Query().Get("error"); msg != "" {
		return Flash{Message: msg, IsError: true}
	}
	if msg := r.URL.Query().Get("flash"); msg != "" {
		return Flash{Message: msg}
	}
	return Flash{}
}
