package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/supabase-community/gotrue-go/types"

	"github.com/SangWon7242/next-board/internal/gateway"
	"github.com/SangWon7242/next-board/models"
	"github.com/SangWon7242/next-board/utils"
)

const userTable = "user"

// SignUpRequest defines the expected request body for account creation.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignUp godoc
// @Summary Register a new account
// @Description Creates an auth user with email and password, then records the user row.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body SignUpRequest true "Email and password"
// @Success 201 {object} models.User
// @Failure 400 {object} object "Invalid email or password"
// @Router /auth/signup [post]
func (h *ApplicationHandler) SignUp(c *fiber.Ctx) error {
	payload := new(SignUpRequest)
	if err := c.BodyParser(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(payload); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest,
			strings.Join(utils.FormatValidationErrors(err), "; "))
	}

	email := strings.TrimSpace(payload.Email)
	resp, err := h.Auth.Signup(types.SignupRequest{
		Email:    email,
		Password: payload.Password,
	})
	if err != nil {
		h.Logger.WithError(err).Error("signup rejected by auth provider")
		return utils.RespondWithError(c, fiber.StatusBadRequest, "signup failed")
	}

	// With autoconfirm enabled the provider returns a session instead of a
	// bare user; the id lives one level deeper in that case.
	userID := resp.ID
	if userID == uuid.Nil {
		userID = resp.Session.User.ID
	}

	row := map[string]interface{}{
		"id":    userID.String(),
		"email": email,
	}
	var created []models.User
	if err := h.Records.Insert(c.Context(), userTable, row, &created); err != nil {
		h.Logger.WithError(err).Error("failed to record user row after signup")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "could not create user record")
	}
	if len(created) == 0 {
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "could not create user record")
	}

	return utils.RespondWithJSON(c, fiber.StatusCreated, created[0])
}

// GetUserByEmail fetches one user row by email.
func (h *ApplicationHandler) GetUserByEmail(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Params("email"))
	if email == "" {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "email is required")
	}

	var user models.User
	if err := h.Records.SelectOne(c.Context(), userTable, "email", email, &user); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return utils.RespondWithError(c, fiber.StatusNotFound, "user not found")
		}
		h.Logger.WithError(err).Error("failed to fetch user")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "could not fetch user")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, user)
}
