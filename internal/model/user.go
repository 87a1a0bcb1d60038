package model

import "time"

// Role determines what a user may administer.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User is a team member. Users are immutable after seeding; there is
// no update operation for them.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Initials returns the upper-cased first letters of each name part,
// used as the avatar fallback.
func (u User) Initials() string {
	initials := make([]rune, 0, 3)
	prevSpace := true
	for _, r := range u.Name {
		if r == ' ' {
			prevSpace = true
			continue
		}
		if prevSpace {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			initials = append(initials, r)
		}
		prevSpace = false
	}
	return string(initials)
}
