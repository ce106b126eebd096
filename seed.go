package auth

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// AdminSeed describes the bootstrap account created on an empty store
type AdminSeed struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

func (s AdminSeed) withDefaults() AdminSeed {
	if s.Username == "" {
		s.Username = "admin"
	}
	if s.Email == "" {
		s.Email = "admin@localhost"
	}
	if s.FirstName == "" {
		s.FirstName = "Admin"
	}
	if s.LastName == "" {
		s.LastName = "Root"
	}
	if s.Role == "" {
		s.Role = "ADMIN"
	}
	return s
}

// EnsureAdminUser creates the default administrator when the store holds
// no accounts, assigning the admin role. It is idempotent: on a non-empty
// store it returns the seed account if present, or nil without touching
// anything. The returned record is always redacted.
func EnsureAdminUser(ctx context.Context, store Users, seed AdminSeed) (*User, error) {
	seed = seed.withDefaults()

	count, err := store.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		existing, err := store.FindByEmail(ctx, seed.Email)
		if err != nil {
			if goerrors.IsNotFound(err) {
				return nil, nil
			}
			return nil, err
		}
		return existing.Redacted(), nil
	}

	if seed.Password == "" {
		return nil, goerrors.New("admin seed password is required", goerrors.CategoryValidation).
			WithTextCode("MISSING_SEED_PASSWORD")
	}

	hash, err := HashPassword(seed.Password)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash admin password")
	}

	admin := &User{
		Username:     seed.Username,
		Email:        seed.Email,
		PasswordHash: hash,
		FirstName:    seed.FirstName,
		LastName:     seed.LastName,
	}

	if admin, err = store.Save(ctx, admin); err != nil {
		return nil, err
	}

	if err := store.AssignRole(ctx, admin.ID, seed.Role); err != nil {
		return nil, err
	}

	// re-read so the role assignment shows up on the returned record
	seeded, err := store.FindByUsername(ctx, admin.Username)
	if err != nil {
		return nil, err
	}

	return seeded.Redacted(), nil
}
