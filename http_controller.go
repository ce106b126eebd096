package auth

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// APIResponse is the uniform envelope every auth endpoint returns
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func apiOK(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

func apiFail(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}

// AuthController exposes register, login, and me over JSON
type AuthController struct {
	Auther *Auther
	Logger Logger
	Scheme string
}

type AuthControllerOption func(*AuthController) *AuthController

func WithControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

// WithScheme sets the Authorization scheme the controller expects,
// normally Config.GetAuthScheme(). Empty values keep the default.
func WithScheme(scheme string) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		if scheme = strings.TrimSpace(scheme); scheme != "" {
			c.Scheme = scheme
		}
		return c
	}
}

func NewAuthController(auther *Auther, opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Auther: auther,
		Logger: defLogger{},
		Scheme: "Bearer",
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	return c
}

// RegisterAuthRoutes mounts the auth endpoints on the given router
func RegisterAuthRoutes[T any](app router.Router[T], controller *AuthController) {
	app.Post("/api/auth/register", controller.RegisterPost).
		SetName("auth.register")

	app.Post("/api/auth/login", controller.LoginPost).
		SetName("auth.login")

	app.Get("/api/auth/me", controller.Me).
		SetName("auth.me")
}

// RegisterRequest payload
type RegisterRequest struct {
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Username  string `form:"username" json:"username"`
	Email     string `form:"email" json:"email"`
	Password  string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 100)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.FirstName, validation.Length(0, 200)),
		validation.Field(&r.LastName, validation.Length(0, 200)),
	)
}

// LoginRequest payload; the username field also accepts an email
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

func (a *AuthController) RegisterPost(ctx router.Context) error {
	payload := new(RegisterRequest)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("register parse payload: %v", err)
		return ctx.JSON(router.StatusBadRequest, apiFail("failed to parse request body"))
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(router.StatusBadRequest, apiFail(err.Error()))
	}

	result, err := a.Auther.Register(ctx.Context(), RegisterPayload{
		Username:  payload.Username,
		Email:     payload.Email,
		Password:  payload.Password,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
	})
	if err != nil {
		a.Logger.Error("register error: %v", err)
		return a.errorResponse(ctx, err)
	}

	return ctx.JSON(router.StatusOK, apiOK("user registered successfully", result))
}

func (a *AuthController) LoginPost(ctx router.Context) error {
	payload := new(LoginRequest)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("login parse payload: %v", err)
		return ctx.JSON(router.StatusBadRequest, apiFail("failed to parse request body"))
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(router.StatusBadRequest, apiFail(err.Error()))
	}

	result, err := a.Auther.Login(ctx.Context(), payload.Username, payload.Password)
	if err != nil {
		a.Logger.Info("login rejected for %s", payload.Username)
		return a.errorResponse(ctx, err)
	}

	return ctx.JSON(router.StatusOK, apiOK("login successful", result))
}

func (a *AuthController) Me(ctx router.Context) error {
	token, err := a.tokenFromHeader(ctx)
	if err != nil {
		return ctx.JSON(router.StatusUnauthorized, apiFail("missing or malformed bearer token"))
	}

	user, err := a.Auther.WhoAmI(ctx.Context(), token)
	if err != nil {
		return a.errorResponse(ctx, err)
	}

	return ctx.JSON(router.StatusOK, apiOK("authenticated user", user))
}

// tokenFromHeader extracts the bearer credential from the Authorization
// header using the configured scheme. GetString reads request locals, not
// headers; Header is the request-header accessor.
func (a *AuthController) tokenFromHeader(ctx router.Context) (string, error) {
	header := ctx.Header("Authorization")
	scheme := strings.TrimSpace(a.Scheme)

	if len(header) > len(scheme)+1 && strings.EqualFold(header[:len(scheme)+1], scheme+" ") {
		return strings.TrimSpace(header[len(scheme)+1:]), nil
	}

	return "", ErrTokenMalformed
}

// errorResponse maps error categories to HTTP statuses; internal details
// never leak past the envelope message.
func (a *AuthController) errorResponse(ctx router.Context, err error) error {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		a.Logger.Error("unexpected auth error: %v", err)
		return ctx.JSON(router.StatusInternalServerError, apiFail("unexpected server error"))
	}

	switch richErr.Category {
	case goerrors.CategoryAuth:
		return ctx.JSON(router.StatusUnauthorized, apiFail(richErr.Message))
	case goerrors.CategoryConflict:
		return ctx.JSON(router.StatusConflict, apiFail(richErr.Message))
	case goerrors.CategoryNotFound:
		return ctx.JSON(router.StatusNotFound, apiFail(richErr.Message))
	case goerrors.CategoryValidation, goerrors.CategoryBadInput:
		return ctx.JSON(router.StatusBadRequest, apiFail(richErr.Message))
	default:
		a.Logger.Error("auth error (%s): %v", richErr.Category, err)
		return ctx.JSON(router.StatusInternalServerError, apiFail("unexpected server error"))
	}
}
