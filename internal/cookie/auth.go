// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cookie

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
)

const (
	// SessionCookieName holds the opaque session token.
	SessionCookieName = "session"
	// UserInfoCookieName holds the display name for UI use.
	UserInfoCookieName = "user_info"
)

type userInfo struct {
	Name string `json:"name"`
}

// AuthCookies sets and clears the session/user_info pair.
type AuthCookies struct {
	defaults Options
}

// NewAuthCookies builds the cookie policy for cfg: Path "/", SameSite=Strict,
// Domain cfg.CookieDomain and Secure in production.
func NewAuthCookies(cfg config.App) *AuthCookies {
	return &AuthCookies{
		defaults: applyOptions(Options{}, []Option{
			WithPath("/"),
			WithDomain(cfg.CookieDomain),
			WithSecure(cfg.IsProduction()),
			WithSameSite(http.SameSiteStrictMode),
		}),
	}
}

// Jar returns an [HTTPJar] with the auth cookie defaults.
func (a *AuthCookies) Jar(w http.ResponseWriter, r *http.Request) Jar {
	return NewHTTPJar(w, r, a.defaults)
}

// Set writes both cookies, expiring at expiresAt.
func (a *AuthCookies) Set(jar Jar, token, displayName string, expiresAt time.Time) error {
	info, err := EncodeUserInfo(displayName)
	if err != nil {
		return err
	}

	jar.Set(SessionCookieName, token, WithHTTPOnly(true), WithExpires(expiresAt))
	jar.Set(UserInfoCookieName, info, WithHTTPOnly(false), WithExpires(expiresAt))
	return nil
}

// SyncUserInfo rewrites the user_info cookie when it is missing or does not
// carry displayName. It reports whether the cookie was written.
func (a *AuthCookies) SyncUserInfo(jar Jar, displayName string, expiresAt time.Time) (bool, error) {
	if current, err := DisplayName(jar); err == nil && current == displayName {
		return false, nil
	}

	info, err := EncodeUserInfo(displayName)
	if err != nil {
		return false, err
	}
	jar.Set(UserInfoCookieName, info, WithHTTPOnly(false), WithExpires(expiresAt))
	return true, nil
}

// Clear expires both cookies.
func (a *AuthCookies) Clear(jar Jar) {
	jar.Clear(SessionCookieName, WithHTTPOnly(true))
	jar.Clear(UserInfoCookieName, WithHTTPOnly(false))
}

// SessionToken returns the token carried by the session cookie, or "" if
// there is none.
func SessionToken(jar Jar) string {
	token, err := jar.Get(SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

// DisplayName returns the name carried by the user_info cookie.
func DisplayName(jar Jar) (string, error) {
	raw, err := jar.Get(UserInfoCookieName)
	if err != nil {
		return "", err
	}
	return DecodeUserInfo(raw)
}

// EncodeUserInfo renders {"name": displayName} as a cookie-safe value.
func EncodeUserInfo(displayName string) (string, error) {
	b, err := json.Marshal(userInfo{Name: displayName})
	if err != nil {
		return "", fmt.Errorf("error encoding user info: %w", err)
	}
	return url.PathEscape(string(b)), nil
}

// DecodeUserInfo reverses [EncodeUserInfo].
func DecodeUserInfo(value string) (string, error) {
	raw, err := url.PathUnescape(value)
	if err != nil {
		return "", errors.Join(ErrInvalidFormat, err)
	}

	var info userInfo
	if err = json.Unmarshal([]byte(raw), &info); err != nil {
		return "", errors.Join(ErrInvalidFormat, err)
	}
	return info.Name, nil
}
