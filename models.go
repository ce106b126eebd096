package auth

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the account model. PasswordHash holds bcrypt output only;
// plaintext is never persisted and the field is never serialized.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id,omitempty"`
	FirstName     string     `bun:"first_name" json:"first_name,omitempty"`
	LastName      string     `bun:"last_name" json:"last_name,omitempty"`
	Username      string     `bun:"username,notnull,unique" json:"username,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	Roles         []*Role    `bun:"m2m:user_roles,join:User=Role" json:"roles,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Redacted returns a copy safe to hand back to callers: the stored
// password hash is stripped.
func (u *User) Redacted() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}

// Role is a named grant, e.g. ADMIN
type Role struct {
	bun.BaseModel `bun:"table:roles,alias:rol"`
	ID            int64  `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Name          string `bun:"name,notnull,unique" json:"name,omitempty"`
}

// UserRole links accounts to roles
type UserRole struct {
	bun.BaseModel `bun:"table:user_roles,alias:usrol"`
	UserID        int64 `bun:"user_id,pk" json:"user_id,omitempty"`
	User          *User `bun:"rel:belongs-to,join:user_id=id" json:"-"`
	RoleID        int64 `bun:"role_id,pk" json:"role_id,omitempty"`
	Role          *Role `bun:"rel:belongs-to,join:role_id=id" json:"-"`
}
