package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comrade-org/membership/internal/domain/model"
	"github.com/comrade-org/membership/internal/server/http/dto"
)

const dateLayout = "2006-01-02"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Success: false, Message: message})
}

func respondInternalError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Success: false, Message: message, Error: err.Error()})
}

func toMemberPayload(member *model.Member) dto.MemberPayload {
	payload := dto.MemberPayload{
		MemberID:         member.MemberID,
		FullName:         member.FullName,
		Email:            member.Email,
		Phone:            member.Phone,
		Address:          member.Address,
		DateOfBirth:      member.DateOfBirth.Format(dateLayout),
		MembershipType:   member.MembershipType,
		Interests:        member.Interests,
		RegistrationDate: member.RegisteredAt,
	}
	if member.Skills != nil {
		payload.Skills = *member.Skills
	}
	if payload.Interests == nil {
		payload.Interests = []string{}
	}
	return payload
}
