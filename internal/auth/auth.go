// Package auth implements the demo sign-in flow. There is no real
// credential backend: every seeded account shares one well-known demo
// password, and registering simply adds a member account to the store.
package auth

import (
	"errors"
	"strings"

	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/internal/store"
)

// DemoPassword is the password every demo account accepts.
const DemoPassword = "123456"

// defaultAvatar is used for accounts created through Register.
const defaultAvatar = "https://images.unsplash.com/photo-1511367461989-f85a21fda167?w=150&h=150&fit=crop&crop=face"

var (
	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrMissingFields is returned when a required field is blank.
	ErrMissingFields = errors.New("name, email, and password are required")
)

// Authenticator signs users in and out of a store's session.
type Authenticator struct {
	store *store.Store
}

// New creates an Authenticator bound to the given store.
func New(s *store.Store) *Authenticator {
	return &Authenticator{store: s}
}

// Login matches the email against the seeded users and the demo
// password, sets the store's current user on success, and returns the
// signed-in user.
func (a *Authenticator) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user := a.store.UserByEmail(email)
	if user == nil || password != DemoPassword {
		return nil, ErrInvalidCredentials
	}

	a.store.SetCurrentUser(user)
	return user, nil
}

// Register creates a member account with the given name and email and
// signs it in. The password is accepted but not stored; demo accounts
// all authenticate with DemoPassword afterwards.
func (a *Authenticator) Register(name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if existing := a.store.UserByEmail(email); existing != nil {
		return nil, ErrEmailTaken
	}

	user := a.store.AddUser(store.UserDraft{
		Name:   name,
		Email:  email,
		Avatar: defaultAvatar,
		Role:   model.RoleMember,
	})

	a.store.SetCurrentUser(&user)
	return &user, nil
}

// Logout clears the store's current user.
func (a *Authenticator) Logout() {
	a.store.SetCurrentUser(nil)
}
