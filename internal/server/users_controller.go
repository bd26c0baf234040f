package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/sportshub/backend/internal/auth"
)

// UsersController handles the public registration endpoint
type UsersController struct {
	Register *auth.RegisterUserHandler
	Logger   auth.Logger
	// DeterministicIDs derives the user id from the email instead of
	// generating a random one
	DeterministicIDs bool
}

// RegistrationRequest payload
type RegistrationRequest struct {
	User struct {
		Email                string `json:"email"`
		Password             string `json:"password"`
		PasswordConfirmation string `json:"password_confirmation"`
	} `json:"user"`
}

// Validate will run validation rules
func (r RegistrationRequest) Validate() error {
	return validation.ValidateStruct(&r.User,
		validation.Field(
			&r.User.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.User.Password,
			validation.Required,
			validation.Length(8, 0),
		),
		validation.Field(
			&r.User.PasswordConfirmation,
			validation.Required,
			validation.By(validateStringEquals(r.User.Password, "password confirmation must match password")),
		),
	)
}

func validateStringEquals(expected, message string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s != expected {
			return errors.New(message, errors.CategoryValidation)
		}
		return nil
	}
}

// RegistrationResponse is returned on a successful registration
type RegistrationResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u *UsersController) Create(c *fiber.Ctx) error {
	payload := new(RegistrationRequest)

	if err := c.BodyParser(payload); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryBadInput, "unable to parse request body"))
	}

	if err := payload.Validate(); err != nil {
		return respondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()))
	}

	user, err := u.Register.Execute(c.UserContext(), auth.RegisterUserMessage{
		Email:     payload.User.Email,
		Password:  payload.User.Password,
		UseHashid: u.DeterministicIDs,
	})
	if err != nil {
		return respondError(c, err)
	}

	u.Logger.Info("registered user", "id", user.ID.String(), "email", user.Email)

	return c.Status(fiber.StatusCreated).JSON(RegistrationResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	})
}
