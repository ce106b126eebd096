package auth

import (
	"context"
	"database/sql"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Users extends the CredentialStore contract with the administrative
// operations seeding relies on.
type Users interface {
	CredentialStore

	AssignRole(ctx context.Context, userID int64, roleName string) error
	CountUsers(ctx context.Context) (int, error)
}

type users struct {
	db *bun.DB
}

var _ Users = (*users)(nil)

// NewUsersRepository returns a Bun-backed Users store. Role assignments
// are loaded with every lookup so authority derivation sees the account's
// current grants.
func NewUsersRepository(db *bun.DB) Users {
	db.RegisterModel((*UserRole)(nil))
	return &users{db: db}
}

func (a *users) FindByUsername(ctx context.Context, username string) (*User, error) {
	return a.findOne(ctx, `?TableAlias.username = ?`, username)
}

func (a *users) FindByEmail(ctx context.Context, email string) (*User, error) {
	return a.findOne(ctx, `?TableAlias.email = ?`, email)
}

func (a *users) FindByUsernameOrEmail(ctx context.Context, identifier string) (*User, error) {
	return a.findOne(ctx, `(?TableAlias.username = ? OR ?TableAlias.email = ?)`, identifier, identifier)
}

func (a *users) findOne(ctx context.Context, where string, args ...any) (*User, error) {
	record := &User{}
	err := a.db.NewSelect().
		Model(record).
		Relation("Roles").
		Where(where, args...).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, newRecordNotFound(args[0])
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "user lookup failed")
	}

	return record, nil
}

func (a *users) Save(ctx context.Context, record *User) (*User, error) {
	if record == nil {
		return nil, goerrors.New("record must not be nil", goerrors.CategoryBadInput)
	}

	if _, err := a.db.NewInsert().Model(record).Returning("*").Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryConflict, "could not create user")
	}

	return record, nil
}

// AssignRole links an account to the named role, creating the role row on
// first use. Used by seeding and administrative flows.
func (a *users) AssignRole(ctx context.Context, userID int64, roleName string) error {
	role := &Role{}
	err := a.db.NewSelect().
		Model(role).
		Where(`?TableAlias.name = ?`, roleName).
		Limit(1).
		Scan(ctx)

	if goerrors.Is(err, sql.ErrNoRows) {
		role = &Role{Name: roleName}
		if _, err = a.db.NewInsert().Model(role).Returning("*").Exec(ctx); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create role")
		}
	} else if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "role lookup failed")
	}

	assignment := &UserRole{UserID: userID, RoleID: role.ID}
	if _, err := a.db.NewInsert().Model(assignment).Ignore().Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not assign role")
	}

	return nil
}

// CountUsers reports the number of account rows; the seeder uses it to
// decide whether bootstrap is needed.
func (a *users) CountUsers(ctx context.Context) (int, error) {
	count, err := a.db.NewSelect().Model((*User)(nil)).Count(ctx)
	if err != nil {
		return 0, goerrors.Wrap(err, goerrors.CategoryInternal, "user count failed")
	}
	return count, nil
}

func newRecordNotFound(identifier any) error {
	return goerrors.New("user not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound).
		WithTextCode("USER_NOT_FOUND").
		WithMetadata(map[string]any{
			"identifier": fmt.Sprintf("%v", identifier),
		})
}
