package auth_test

import (
	"errors"
	"testing"

	"github.com/nhle/taskboard/internal/auth"
	"github.com/nhle/taskboard/internal/model"
	"github.com/nhle/taskboard/tests/testutil"
)

func TestLogin(t *testing.T) {
	s := testutil.NewSeededStore(t)
	a := auth.New(s)

	user, err := a.Login("joao@example.com", auth.DemoPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != "1" || user.Role != model.RoleAdmin {
		t.Errorf("signed in as %+v, want seeded admin", user)
	}

	current := s.CurrentUser()
	if current == nil || current.ID != user.ID {
		t.Error("store's current user not set after login")
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	s := testutil.NewSeededStore(t)
	a := auth.New(s)

	if _, err := a.Login("  Joao@Example.COM  ", auth.DemoPassword); err != nil {
		t.Fatalf("Login with unnormalized email: %v", err)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	s := testutil.NewSeededStore(t)
	a := auth.New(s)

	_, err := a.Login("joao@example.com", "wrong")
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if s.CurrentUser() != nil {
		t.Error("failed login left a current user behind")
	}
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	s := testutil.NewSeededStore(t)
	a := auth.New(s)

	_, err := a.Login("nobody@example.com", auth.DemoPassword)
	if !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsBlankFields(t *testing.T) {
	s := testutil.NewSeededStore(t)
	a := auth.New(s)

	if _, err := a.Login("", auth.DemoPassword); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("blank email: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := a.Login("joao@example.com", ""); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("blank password: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRegister(t *testing.T) {
	s := testutil.NewSeededStore(t)
	a := auth.New(s)

	user, err := a.Register("Rui Ferreira", "Rui@Example.com", "whatever")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "rui@example.com" {
		t.Errorf("email = %q, want lowercased", user.Email)
	}
	if user.Role != model.RoleMember {
		t.Errorf("role = %q, want %q", user.Role, model.RoleMember)
	}
	if user.ID != "5" {
		t.Errorf("id = %q, want next sequential id 5", user.ID)
	}

	current := s.CurrentUser()
	if current == nil || current.ID != user.ID {
		t.Error("registering did not sign the new account in")
	}

	// The new account authenticates with the shared demo password, not
	// the one supplied at registration.
	a.Logout()
	if _, err := a.Login("rui@example.com", auth.DemoPassword); err != nil {
		t.Errorf("login after register: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	s := testutil.NewSeededStore(t)
	a := auth.New(s)

	_, err := a.Register("Someone", "joao@example.com", "pw")
	if !errors.Is(err, auth.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	s := testutil.NewSeededStore(t)
	a := auth.New(s)

	for _, tc := range []struct{ name, email, password string }{
		{"", "x@example.com", "pw"},
		{"X", "", "pw"},
		{"X", "x@example.com", ""},
	} {
		if _, err := a.Register(tc.name, tc.email, tc.password); !errors.Is(err, auth.ErrMissingFields) {
			t.Errorf("Register(%q, %q, %q): err = %v, want ErrMissingFields",
				tc.name, tc.email, tc.password, err)
		}
	}
}

func TestLogout(t *testing.T) {
	s := testutil.NewSeededStore(t)
	a := auth.New(s)

	if _, err := a.Login("maria@example.com", auth.DemoPassword); err != nil {
		t.Fatalf("Login: %v", err)
	}
	a.Logout()
	if s.CurrentUser() != nil {
		t.Error("current user still set after logout")
	}
	// Logging out twice is harmless.
	a.Logout()
}
