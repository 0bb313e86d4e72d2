package models

// TeamRole represents a member's permission tier within a team.
type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
)

// Team represents a group of users sharing finance data. The owner is fixed
// at creation and always has a matching TeamMember row with role owner.
type Team struct {
	Base
	Name    string `gorm:"not null" json:"name"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`

	Members []TeamMember `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

// TeamMember links a user to a team with a role.
type TeamMember struct {
	Base
	TeamID uint     `gorm:"not null;index" json:"team_id"`
	UserID uint     `gorm:"not null;index" json:"user_id"`
	Role   TeamRole `gorm:"not null;default:'member'" json:"role"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
