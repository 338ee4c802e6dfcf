// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cookie hides cookie access behind a small [Jar] interface and
// implements the pair of authentication cookies on top of it:
//
//   - "session": HttpOnly, carries the opaque session token. It is the only
//     credential the server accepts.
//   - "user_info": readable by scripts, carries {"name": ...} for UI use.
//     It grants nothing.
//
// Both cookies share Path "/", SameSite=Strict, the session expiry and, in
// production, the Secure attribute. They are always set and cleared together.
package cookie
