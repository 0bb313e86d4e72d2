package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/password"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	username := fmt.Sprintf("user%d", nextID())
	return CreateTestUserWithUsername(t, db, username)
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := password.Hash("password123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: hash,
		Email:    fmt.Sprintf("%s@test.com", username),
		FullName: "Test User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAccount creates a bank account with zero balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, userID uint) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, userID, 0)
}

// CreateTestAccountWithBalance creates a bank account with the given balance (in cents).
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, userID uint, balance int64) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:   userID,
		Name:     fmt.Sprintf("Test Account %d", nextID()),
		Type:     models.AccountTypeBank,
		Balance:  balance,
		Currency: "USD",
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction creates a transaction linked to the given account.
func CreateTestTransaction(t *testing.T, db *gorm.DB, userID, accountID uint, txType models.TransactionType, amount int64) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		UserID:      userID,
		AccountID:   &accountID,
		Amount:      amount,
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Category:    "General",
		Type:        txType,
		Date:        time.Now(),
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}

// CreateTestTeam creates a team with the given owner and its owner
// membership row.
func CreateTestTeam(t *testing.T, db *gorm.DB, ownerID uint) *models.Team {
	t.Helper()

	team := &models.Team{
		Name:    fmt.Sprintf("Test Team %d", nextID()),
		OwnerID: ownerID,
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create test team: %v", err)
	}

	member := &models.TeamMember{
		TeamID: team.ID,
		UserID: ownerID,
		Role:   models.TeamRoleOwner,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test team owner membership: %v", err)
	}
	return team
}

// CreateTestTeamMember adds a user to the team with the given role.
func CreateTestTeamMember(t *testing.T, db *gorm.DB, teamID, userID uint, role models.TeamRole) *models.TeamMember {
	t.Helper()

	member := &models.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test team member: %v", err)
	}
	return member
}
