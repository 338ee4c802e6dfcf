// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cookie

import (
	"errors"
	"net/http"
	"time"
)

// Jar reads and writes cookies for one request/response exchange.
type Jar interface {
	// Get returns the value of the named cookie or ErrCookieNotFound.
	Get(name string) (string, error)
	// Set writes the named cookie with the jar defaults overridden by opts.
	Set(name, value string, opts ...Option)
	// Clear expires the named cookie. opts must match the Path and Domain
	// the cookie was set with.
	Clear(name string, opts ...Option)
}

// HTTPJar is a [Jar] over net/http.
type HTTPJar struct {
	w        http.ResponseWriter
	r        *http.Request
	defaults Options
}

// NewHTTPJar binds a jar to w and r.
func NewHTTPJar(w http.ResponseWriter, r *http.Request, defaults Options) *HTTPJar {
	return &HTTPJar{w: w, r: r, defaults: defaults}
}

func (j *HTTPJar) Get(name string) (string, error) {
	c, err := j.r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

func (j *HTTPJar) Set(name, value string, opts ...Option) {
	options := applyOptions(j.defaults, opts)

	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		Expires:  options.Expires,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

func (j *HTTPJar) Clear(name string, opts ...Option) {
	options := applyOptions(applyOptions(j.defaults, opts), []Option{WithMaxAge(-1), WithExpires(time.Unix(0, 0))})

	http.SetCookie(j.w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     options.Path,
		Domain:   options.Domain,
		Expires:  options.Expires,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

var _ Jar = (*HTTPJar)(nil)
