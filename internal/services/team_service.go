package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

type teamService struct {
	db          *gorm.DB
	userService UserServicer
}

// NewTeamService creates a new TeamServicer.
func NewTeamService(db *gorm.DB, userService UserServicer) TeamServicer {
	return &teamService{
		db:          db,
		userService: userService,
	}
}

// CreateTeam creates a team and its owner membership row in one database
// transaction so a team can never exist without exactly one owner.
func (s *teamService) CreateTeam(ownerID uint, name string) (*models.Team, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "team name is required")
	}

	team := &models.Team{
		Name:    name,
		OwnerID: ownerID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		member := &models.TeamMember{
			TeamID: team.ID,
			UserID: ownerID,
			Role:   models.TeamRoleOwner,
		}
		if err := tx.Create(member).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return team, nil
}

// GetUserTeams returns every team the user belongs to, owned or joined.
func (s *teamService) GetUserTeams(userID uint) ([]models.Team, error) {
	teams := []models.Team{}
	err := s.db.
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ? AND team_members.deleted_at IS NULL", userID).
		Order("teams.created_at ASC").
		Find(&teams).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return teams, nil
}

// GetTeamByID retrieves a team the acting user is a member of. Unknown
// teams report NOT_FOUND before the membership check reports FORBIDDEN.
func (s *teamService) GetTeamByID(userID, teamID uint) (*models.Team, error) {
	var team models.Team
	if err := s.db.First(&team, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if _, err := s.membership(teamID, userID); err != nil {
		return nil, err
	}

	return &team, nil
}

// GetTeamMembers lists a team's members with their user records loaded.
// Only members can see the roster.
func (s *teamService) GetTeamMembers(userID, teamID uint) ([]models.TeamMember, error) {
	if _, err := s.GetTeamByID(userID, teamID); err != nil {
		return nil, err
	}

	members := []models.TeamMember{}
	err := s.db.Preload("User").
		Where("team_id = ?", teamID).
		Order("created_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return members, nil
}

// AddMember adds a user to the team by username. Only the owner may add
// members, and a user can hold at most one membership per team.
func (s *teamService) AddMember(actingUserID, teamID uint, username string, role models.TeamRole) (*models.TeamMember, error) {
	team, err := s.GetTeamByID(actingUserID, teamID)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != actingUserID {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.userService.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	var existing models.TeamMember
	err = s.db.Where("team_id = ? AND user_id = ?", teamID, user.ID).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrAlreadyMember
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if role == "" {
		role = models.TeamRoleMember
	}
	if role == models.TeamRoleOwner {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot grant the owner role")
	}

	member := &models.TeamMember{
		TeamID: teamID,
		UserID: user.ID,
		Role:   role,
		User:   user,
	}
	if err := s.db.Create(member).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return member, nil
}

// RemoveMember removes a membership. The owner can remove anyone but
// themselves; other members can only leave on their own behalf.
func (s *teamService) RemoveMember(actingUserID, teamID, targetUserID uint) error {
	team, err := s.GetTeamByID(actingUserID, teamID)
	if err != nil {
		return err
	}

	if actingUserID != team.OwnerID && actingUserID != targetUserID {
		return apperrors.ErrForbidden
	}
	if targetUserID == team.OwnerID {
		return apperrors.ErrCannotRemoveOwner
	}

	var member models.TeamMember
	err = s.db.Where("team_id = ? AND user_id = ?", teamID, targetUserID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&member).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *teamService) membership(teamID, userID uint) (*models.TeamMember, error) {
	var member models.TeamMember
	err := s.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrForbidden
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &member, nil
}
