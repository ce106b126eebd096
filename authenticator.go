package auth

import (
	"context"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// Defaults applied when a registration omits profile name parts
const (
	DefaultFirstName = "User"
	DefaultLastName  = "Default"
)

// RegisterPayload carries the fields of a registration request
type RegisterPayload struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult is what a successful registration or login hands back: the
// redacted account and a freshly minted bearer token.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Auther orchestrates the credential store, the password hasher, and the
// token service. State is read-only after construction, so a single
// instance serves concurrent requests.
type Auther struct {
	store        CredentialStore
	tokenService TokenService
	logger       Logger
}

// NewAuthenticator derives the signing key from the configured secret and
// wires up the orchestrator. A missing or empty secret is a fatal,
// non-retryable configuration error. With strict-secret enabled, a secret
// below the HS512 minimum is fatal too; otherwise it is extended and a
// warning logged.
func NewAuthenticator(store CredentialStore, cfg Config) (*Auther, error) {
	logger := defLogger{}

	derive := DeriveSigningKey
	if cfg.GetStrictSecret() {
		derive = DeriveStrictSigningKey
	}

	signingKey, err := derive(cfg.GetSigningSecret())
	if err != nil {
		return nil, err
	}

	if !cfg.GetStrictSecret() && len(strings.TrimSpace(cfg.GetSigningSecret())) < HS512MinKeyLen {
		logger.Warn("signing secret below %d bytes was extended; this does not add entropy", HS512MinKeyLen)
	}

	expiration := DefaultTokenExpiration
	if cfg.GetTokenExpiration() > 0 {
		expiration = time.Duration(cfg.GetTokenExpiration()) * time.Hour
	}

	return &Auther{
		store:        store,
		tokenService: NewTokenService(signingKey, expiration, cfg.GetIssuer(), logger),
		logger:       logger,
	}, nil
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Register creates a new account: uniqueness checks, password hashing, one
// store write, then a token mint. The store is left untouched when either
// uniqueness check rejects.
func (s *Auther) Register(ctx context.Context, payload RegisterPayload) (*AuthResult, error) {
	username := strings.TrimSpace(payload.Username)
	email := strings.TrimSpace(payload.Email)

	if username == "" || email == "" || payload.Password == "" {
		return nil, goerrors.New("username, email, and password are required", goerrors.CategoryValidation).
			WithTextCode("MISSING_REQUIRED_FIELDS")
	}

	if _, err := s.store.FindByUsername(ctx, username); err == nil {
		s.logger.Info("Register rejected duplicate username: %s", username)
		return nil, ErrDuplicateUsername
	} else if !goerrors.IsNotFound(err) {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check username uniqueness")
	}

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		s.logger.Info("Register rejected duplicate email: %s", email)
		return nil, ErrDuplicateEmail
	} else if !goerrors.IsNotFound(err) {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check email uniqueness")
	}

	hash, err := HashPassword(payload.Password)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    orDefault(payload.FirstName, DefaultFirstName),
		LastName:     orDefault(payload.LastName, DefaultLastName),
	}

	// the store reports conflicts with their own category; re-wrapping
	// here would turn a uniqueness race into a 500
	saved, err := s.store.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenService.Generate(saved.Username, Authorities(saved))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Registered new account %s", saved.Username)

	return &AuthResult{User: saved.Redacted(), Token: token}, nil
}

// Login authenticates an identifier-or-email plus password pair and mints
// a token carrying the account's current authorities. Unknown identifiers
// and wrong passwords are indistinguishable to the caller. No state is
// mutated on success or failure.
func (s *Auther) Login(ctx context.Context, identifier, password string) (*AuthResult, error) {
	user, err := s.store.FindByUsernameOrEmail(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if goerrors.IsNotFound(err) {
			s.logger.Info("Login failed, unknown identifier: %s", identifier)
			return nil, ErrMismatchedHashAndPassword
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve account during login")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		s.logger.Info("Login failed, credential mismatch for %s", user.Username)
		return nil, ErrMismatchedHashAndPassword
	}

	token, err := s.tokenService.Generate(user.Username, Authorities(user))
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user.Redacted(), Token: token}, nil
}

// WhoAmI resolves a bearer token back to its account. The returned record
// never carries the password hash.
func (s *Auther) WhoAmI(ctx context.Context, token string) (*User, error) {
	claims, err := s.tokenService.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.store.FindByUsernameOrEmail(ctx, claims.Subject())
	if err != nil {
		if goerrors.IsNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to resolve token subject")
	}

	return user.Redacted(), nil
}

func orDefault(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

var _ Authenticator = (*Auther)(nil)
