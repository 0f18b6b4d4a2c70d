package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/comrade-org/membership/internal/domain/errors"
	"github.com/comrade-org/membership/internal/domain/model"
	"github.com/comrade-org/membership/internal/server/http/dto"
)

// RegistrationHandler manages the member registration endpoint.
type RegistrationHandler struct {
	facade RegistrationFacade
}

// NewRegistrationHandler constructs RegistrationHandler.
func NewRegistrationHandler(facade RegistrationFacade) *RegistrationHandler {
	return &RegistrationHandler{facade: facade}
}

// Register handles POST /api/register.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	member, err := h.facade.RegisterMember(c.Request.Context(), model.RegistrationInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		DateOfBirth:    req.DateOfBirth,
		MembershipType: req.MembershipType,
		Skills:         req.Skills,
		Interests:      req.Interests,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "All required fields must be filled")
		case errors.Is(err, domainErrors.ErrEmailTaken):
			respondError(c, http.StatusConflict, "Email already registered")
		default:
			respondInternalError(c, "Registration failed. Please try again later.", err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Success:  true,
		Message:  "Registration successful",
		MemberID: member.MemberID,
	})
}
