package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artem13815/blog/api/http/presenter"
	"github.com/artem13815/blog/pkg/auth"
	"github.com/artem13815/blog/pkg/security/jwt"
)

// validate is shared by all handlers in this package.
var validate = validator.New()

type AuthHandler struct {
	useCase      auth.UseCase
	pres         *presenter.Presenter
	log          zerolog.Logger
	secureCookie bool
}

func NewAuthHandler(useCase auth.UseCase, pres *presenter.Presenter, log zerolog.Logger, secureCookie bool) *AuthHandler {
	return &AuthHandler{useCase: useCase, pres: pres, log: log, secureCookie: secureCookie}
}

type registerRequest struct {
	Handle          string `json:"handle" validate:"required,alphanum,min=3"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// Register handles user registration.
// @Summary Register a new user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} presenter.Envelope
// @Failure 400 {object} presenter.Envelope
// @Failure 409 {object} presenter.Envelope
// @Router  /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid registration payload")
	}

	if err := h.useCase.Register(c.Context(), req.Handle, req.Password); err != nil {
		var ve auth.ErrValidation
		switch {
		case errors.As(err, &ve):
			return h.pres.Error(c, http.StatusBadRequest, ve.Error())
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return h.pres.Error(c, http.StatusConflict, "this handle is already taken")
		default:
			h.log.Error().Err(err).Msg("register failed")
			return h.pres.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return h.pres.OK(c, http.StatusCreated, nil)
}

type loginRequest struct {
	Handle   string `json:"handle" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

// Login handles user login. On success the access token is returned in the
// body and also set as an http-only cookie for browser clients.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} presenter.Envelope{data=sessionResponse}
// @Failure 400 {object} presenter.Envelope
// @Failure 401 {object} presenter.Envelope
// @Router  /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return h.pres.Error(c, http.StatusBadRequest, "handle and password are required")
	}

	session, err := h.useCase.Login(c.Context(), req.Handle, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Same response whether the handle exists or the password is wrong.
			return h.pres.Error(c, http.StatusUnauthorized, "invalid handle or password")
		}
		h.log.Error().Err(err).Msg("login failed")
		return h.pres.Error(c, http.StatusInternalServerError, "failed to login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     jwt.CookieName,
		Value:    session.AccessToken,
		Path:     "/",
		MaxAge:   session.ExpiresIn,
		HTTPOnly: true,
		Secure:   h.secureCookie,
	})

	return h.pres.OK(c, http.StatusOK, sessionResponse{
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
		AccessToken: session.AccessToken,
	})
}
