package models

// User represents a registered user.
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Email    string `gorm:"not null" json:"email"`
	FullName string `gorm:"not null" json:"full_name"`
	Avatar   string `json:"avatar,omitempty"`
	IsPro    bool   `gorm:"default:false" json:"is_pro"`

	Accounts     []Account     `gorm:"foreignKey:UserID" json:"accounts,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Teams        []Team        `gorm:"foreignKey:OwnerID" json:"teams,omitempty"`
}
