package accounts

import (
	stderrors "errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// RegisterAuthRoutes mounts the JSON API on the given router. The controller
// must carry a Protected middleware for the authenticated routes.
func RegisterAuthRoutes[T any](app router.Router[T], opts ...AuthControllerOption) {

	controller := NewAuthController(opts...)

	app.
		Post(controller.Routes.Register, controller.RegisterAccountCreate).
		SetName("auth.register.post")

	app.
		Post(controller.Routes.Login, controller.LoginPost).
		SetName("auth.login.post")

	app.
		Put(controller.Routes.UpdateProfile, controller.UpdateProfile, controller.Protected).
		SetName("auth.profile.put")

	app.
		Get(controller.Routes.Profile, controller.ProfileShow, controller.Protected).
		SetName("auth.profile.get")

	app.
		Get(controller.Routes.Health, controller.HealthCheck).
		SetName("health.get")
}

type AuthControllerRoutes struct {
	Register      string
	Login         string
	UpdateProfile string
	Profile       string
	Health        string
}

type AuthController struct {
	Debug        bool
	Logger       Logger
	Repo         RepositoryManager
	Auth         Authenticator
	Routes       *AuthControllerRoutes
	Protected    router.MiddlewareFunc
	ContextKey   string
	ErrorHandler router.ErrorHandler
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger:     defLogger{},
		ContextKey: "claims",
		Routes: &AuthControllerRoutes{
			Register:      "/auth/registerAccount",
			Login:         "/auth/login",
			UpdateProfile: "/auth/updateProfile",
			Profile:       "/auth/profile",
			Health:        "/health",
		},
	}

	c.ErrorHandler = c.respondError

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in auth controller...")
	}

	if c.Auth == nil {
		panic("Missing Authenticator in auth controller...")
	}

	if c.Protected == nil {
		panic("Missing Protected middleware in auth controller...")
	}

	return c
}

func (a *AuthController) WithLogger(l Logger) *AuthController {
	if l != nil {
		a.Logger = l
	}
	return a
}

// HealthCheck reports process liveness
func (a *AuthController) HealthCheck(ctx router.Context) error {
	return ctx.JSON(router.StatusOK, map[string]string{
		"status": "ok",
	})
}

// RegisterAccountPayload is the registration body
type RegisterAccountPayload struct {
	Name     string `form:"name" json:"name"`
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r RegisterAccountPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		// bcrypt digests at most 72 bytes of input
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

func (a *AuthController) RegisterAccountCreate(ctx router.Context) error {
	payload := new(RegisterAccountPayload)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("register account parse payload", "error", err)
		return ctx.JSON(router.StatusBadRequest, map[string]any{
			"errors": map[string]string{"body": "Failed to parse request body"},
		})
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("register account validate payload", "error", err)
		return ctx.JSON(router.StatusBadRequest, map[string]any{
			"errors": FormatValidationErrorToMap(err),
		})
	}

	if a.Debug {
		fmt.Println("======= ACCOUNT REGISTER ======")
		fmt.Println(print.MaybePrettyJSON(payload))
		fmt.Println("===============================")
	}

	var res *RegisterAccountResponse

	msg := RegisterAccountMessage{
		Name:     payload.Name,
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		OnResponse: func(r *RegisterAccountResponse) {
			res = r
		},
	}

	registerAccount := NewRegisterAccountHandler(a.Repo, a.Auth.TokenService())
	if err := registerAccount.Execute(ctx.Context(), msg); err != nil {
		a.Logger.Error("register account execute", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(router.StatusCreated, map[string]any{
		"message":    "Account created successfully.",
		"token":      res.Token,
		"account_id": res.AccountID,
	})
}

// LoginPayload is the login body
type LoginPayload struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules. Password is an existence-only check,
// the stored hash decides the rest.
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

func (a *AuthController) LoginPost(ctx router.Context) error {
	payload := new(LoginPayload)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return ctx.JSON(router.StatusBadRequest, map[string]any{
			"errors": map[string]string{"body": "Failed to parse request body"},
		})
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("login validate payload", "error", err)
		return ctx.JSON(router.StatusBadRequest, map[string]any{
			"errors": FormatValidationErrorToMap(err),
		})
	}

	result, err := a.Auth.Login(ctx.Context(), payload.Email, payload.Password)
	if err != nil {
		a.Logger.Error("login error", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(router.StatusOK, map[string]any{
		"message":    "Login successful.",
		"token":      result.Token,
		"account_id": result.AccountID,
	})
}

// UpdateProfilePayload carries the partial profile update. Absent fields stay
// nil and are not applied.
type UpdateProfilePayload struct {
	Bio       *string `form:"bio" json:"bio"`
	Country   *string `form:"country" json:"country"`
	State     *string `form:"state" json:"state"`
	City      *string `form:"city" json:"city"`
	AvatarURL *string `form:"avatar_url" json:"avatar_url"`
}

// Validate will run validation rules
func (r UpdateProfilePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Bio, validation.Length(0, 160)),
		validation.Field(&r.Country, validation.Length(0, 50)),
		validation.Field(&r.State, validation.Length(0, 50)),
		validation.Field(&r.City, validation.Length(0, 50)),
		validation.Field(&r.AvatarURL, is.URL),
	)
}

func (a *AuthController) UpdateProfile(ctx router.Context) error {
	accountID, err := a.accountIDFromContext(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	payload := new(UpdateProfilePayload)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("update profile parse payload", "error", err)
		return ctx.JSON(router.StatusBadRequest, map[string]any{
			"errors": map[string]string{"body": "Failed to parse request body"},
		})
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("update profile validate payload", "error", err)
		return ctx.JSON(router.StatusBadRequest, map[string]any{
			"errors": FormatValidationErrorToMap(err),
		})
	}

	msg := UpdateProfileMessage{
		AccountID: accountID,
		Bio:       payload.Bio,
		Country:   payload.Country,
		State:     payload.State,
		City:      payload.City,
		AvatarURL: payload.AvatarURL,
	}

	updateProfile := NewUpdateProfileHandler(a.Repo)
	if err := updateProfile.Execute(ctx.Context(), msg); err != nil {
		a.Logger.Error("update profile execute", "error", err)
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(router.StatusOK, map[string]any{
		"message": "Profile updated successfully.",
	})
}

func (a *AuthController) ProfileShow(ctx router.Context) error {
	accountID, err := a.accountIDFromContext(ctx)
	if err != nil {
		return a.ErrorHandler(ctx, err)
	}

	profile, err := a.Repo.Profiles().GetByAccountID(ctx.Context(), accountID)
	if err != nil {
		if errors.IsNotFound(err) {
			return a.ErrorHandler(ctx, ErrProfileNotFound)
		}
		return a.ErrorHandler(ctx, err)
	}

	return ctx.JSON(router.StatusOK, map[string]any{
		"profile": profile,
	})
}

func (a *AuthController) accountIDFromContext(ctx router.Context) (uuid.UUID, error) {
	claims, ok := GetRouterClaims(ctx, a.ContextKey)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}

	id, err := uuid.Parse(claims.AccountID())
	if err != nil {
		return uuid.Nil, ErrTokenMalformed
	}

	return id, nil
}

// respondError maps rich errors to JSON responses. Internal detail never
// reaches the client.
func (a *AuthController) respondError(ctx router.Context, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
			WithCode(errors.CodeInternal)
	}

	status := richErr.Code
	if status == 0 {
		status = router.StatusInternalServerError
	}

	message := richErr.Message
	if richErr.Category == errors.CategoryInternal || status >= router.StatusInternalServerError {
		a.Logger.Error("internal error",
			"error", err,
			"category", richErr.Category,
			"text_code", richErr.TextCode,
		)
		status = router.StatusInternalServerError
		message = "Internal server error."
	}

	return ctx.JSON(status, map[string]any{
		"message": message,
	})
}

// FormatValidationErrorToMap flattens ozzo validation errors into a
// field -> message map for 400 responses.
func FormatValidationErrorToMap(err error) map[string]string {
	out := map[string]string{}

	var verrs validation.Errors
	if stderrors.As(err, &verrs) {
		for field, ferr := range verrs {
			if ferr != nil {
				out[field] = ferr.Error()
			}
		}
		return out
	}

	out["error"] = err.Error()
	return out
}
