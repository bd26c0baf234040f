package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/sportshub/backend/internal/auth"
)

// AuthController handles sign in, the password grant wrapper, and sign out
type AuthController struct {
	Auth   *auth.Authenticator
	Logger auth.Logger
	Debug  bool
}

// SignInRequest payload
type SignInRequest struct {
	User struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

// Validate will run validation rules
func (r SignInRequest) Validate() error {
	return validation.ValidateStruct(&r.User,
		validation.Field(
			&r.User.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.User.Password,
			validation.Required,
		),
	)
}

// SignInResponse is the sign in payload returned to clients
type SignInResponse struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	AuthenticationToken string `json:"authentication_token"`
}

func (a *AuthController) SignIn(c *fiber.Ctx) error {
	payload := new(SignInRequest)

	if err := c.BodyParser(payload); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()))
	}

	if a.Debug {
		a.Logger.Debug("sign in payload", "payload", print.MaybePrettyJSON(payload))
	}

	user, token, err := a.Auth.AuthenticateCredentials(c.UserContext(), payload.User.Email, payload.User.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(SignInResponse{
		ID:                  user.ID.String(),
		Email:               user.Email,
		AuthenticationToken: token,
	})
}

// TokenRequest is the password grant form payload
type TokenRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Username,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// TokenResponse mirrors the password grant response shape
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token is the form based wrapper over the same credential check as SignIn
func (a *AuthController) Token(c *fiber.Ctx) error {
	payload := new(TokenRequest)

	if err := c.BodyParser(payload); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()))
	}

	_, token, err := a.Auth.AuthenticateCredentials(c.UserContext(), payload.Username, payload.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// SignOut revokes the bearer token used on this request
func (a *AuthController) SignOut(c *fiber.Ctx) error {
	token := CurrentToken(c)

	if _, err := a.Auth.SignOut(c.UserContext(), token); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Signed out successfully.",
	})
}
