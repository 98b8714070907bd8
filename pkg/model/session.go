package model

import "time"

// Session is the handle returned by the identity gateway after a
// successful register or sign-in.
type Session struct {
	UID         string    `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name,omitempty"`
	Token       string    `json:"token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SessionState is what session watchers observe. Session is nil when
// nobody is signed in. IsAdmin is resolved before the state is published,
// so watchers never see an authenticated session with an undetermined
// admin flag.
type SessionState struct {
	Session *Session `json:"session,omitempty"`
	IsAdmin bool     `json:"is_admin"`
}
