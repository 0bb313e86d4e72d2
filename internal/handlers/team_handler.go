package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// TeamHandler handles team and membership requests.
type TeamHandler struct {
	teamService services.TeamServicer
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(teamService services.TeamServicer) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeamRequest represents the request payload for creating a team
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// AddMemberRequest represents the request payload for adding a team member
type AddMemberRequest struct {
	Username string `json:"username" binding:"required"`
	Role     string `json:"role" binding:"omitempty,team_role"`
}

// TeamResponse represents a team in the response
type TeamResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	OwnerID uint   `json:"owner_id"`
}

// TeamMemberResponse represents a team member in the response
type TeamMemberResponse struct {
	ID     uint            `json:"id"`
	TeamID uint            `json:"team_id"`
	UserID uint            `json:"user_id"`
	Role   models.TeamRole `json:"role"`
	User   *UserResponse   `json:"user,omitempty"`
}

// CreateTeam creates a new team owned by the authenticated user
// @Summary     Create a team
// @Description Create a new team; the creator becomes its owner
// @Tags        teams
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTeamRequest true "Team details"
// @Success     201 {object} TeamResponse "Team created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	team, err := h.teamService.CreateTeam(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": team})
}

// GetUserTeams lists the teams the authenticated user belongs to
// @Summary     List teams
// @Description Get all teams the authenticated user owns or has joined
// @Tags        teams
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} TeamResponse "Teams"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teams [get]
func (h *TeamHandler) GetUserTeams(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	teams, err := h.teamService.GetUserTeams(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeamByID returns a single team
// @Summary     Get a team
// @Description Get a team the authenticated user is a member of
// @Tags        teams
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Team ID"
// @Success     200 {object} TeamResponse "Team"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Team not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teams/{id} [get]
func (h *TeamHandler) GetTeamByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	teamID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	team, err := h.teamService.GetTeamByID(userID, teamID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// GetTeamMembers lists a team's members
// @Summary     List team members
// @Description Get the members of a team the authenticated user belongs to
// @Tags        teams
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Team ID"
// @Success     200 {array} TeamMemberResponse "Members"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Team not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teams/{id}/members [get]
func (h *TeamHandler) GetTeamMembers(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	teamID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	members, err := h.teamService.GetTeamMembers(userID, teamID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// AddMember adds a user to a team by username
// @Summary     Add a team member
// @Description Add a user to a team by username; only the team owner may do this
// @Tags        teams
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Team ID"
// @Param       request body AddMemberRequest true "Member details"
// @Success     201 {object} TeamMemberResponse "Member added"
// @Failure     400 {object} ErrorResponse "Invalid input or already a member"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Team or user not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teams/{id}/members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	teamID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	member, err := h.teamService.AddMember(userID, teamID, req.Username, models.TeamRole(req.Role))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// RemoveMember removes a member from a team
// @Summary     Remove a team member
// @Description Remove a member from a team; the owner can remove anyone but themselves, members can leave
// @Tags        teams
// @Security    BearerAuth
// @Param       id path int true "Team ID"
// @Param       userId path int true "User ID of the member"
// @Success     204 "Member removed"
// @Failure     400 {object} ErrorResponse "Cannot remove the owner"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "Team or member not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	teamID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	targetUserID, err := parsePathID(c, "userId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.teamService.RemoveMember(userID, teamID, targetUserID); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
