package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/comrade-org/membership/internal/domain/errors"
	"github.com/comrade-org/membership/internal/server/http/dto"
)

// MemberHandler serves member profile lookups.
type MemberHandler struct {
	facade MemberFacade
}

// NewMemberHandler constructs MemberHandler.
func NewMemberHandler(facade MemberFacade) *MemberHandler {
	return &MemberHandler{facade: facade}
}

// Profile handles GET /api/member/:memberId.
func (h *MemberHandler) Profile(c *gin.Context) {
	memberID := c.Param("memberId")

	member, err := h.facade.MemberByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Member not found")
			return
		}
		respondInternalError(c, "Lookup failed. Please try again later.", err)
		return
	}

	c.JSON(http.StatusOK, dto.MemberResponse{Success: true, Member: toMemberPayload(member)})
}
