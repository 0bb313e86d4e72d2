package services

import (
	"testing"

	"fintrack/internal/password"
	"fintrack/internal/testutil"
)

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.Register("alice", "secret123", "Alice@Example.com", "Alice Doe")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %q", user.Email)
		}
		if user.Password == "secret123" {
			t.Error("password should be stored hashed")
		}
		ok, err := password.Verify("secret123", user.Password)
		testutil.AssertNoError(t, err)
		if !ok {
			t.Error("stored hash should verify against the original password")
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register("bob", "secret123", "bob@example.com", "Bob")
		testutil.AssertNoError(t, err)

		_, err = svc.Register("bob", "othersecret", "bob2@example.com", "Bob Two")
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})

	t.Run("missing_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register("", "secret123", "x@example.com", "X")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("short_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register("carol", "123", "carol@example.com", "Carol")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		registered, err := svc.Register("dave", "secret123", "dave@example.com", "Dave")
		testutil.AssertNoError(t, err)

		user, err := svc.Authenticate("dave", "secret123")
		testutil.AssertNoError(t, err)
		if user.ID != registered.ID {
			t.Errorf("expected user %d, got %d", registered.ID, user.ID)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Register("erin", "secret123", "erin@example.com", "Erin")
		testutil.AssertNoError(t, err)

		_, err = svc.Authenticate("erin", "wrongpass")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_username_same_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.Authenticate("nobody", "secret123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestGetUser(t *testing.T) {
	t.Run("by_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		found, err := svc.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if found.Username != user.Username {
			t.Errorf("expected username %q, got %q", user.Username, found.Username)
		}
	})

	t.Run("by_id_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByID(99999)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("by_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		found, err := svc.GetUserByUsername(user.Username)
		testutil.AssertNoError(t, err)
		if found.ID != user.ID {
			t.Errorf("expected user %d, got %d", user.ID, found.ID)
		}
	})

	t.Run("by_username_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByUsername("ghost")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		updated, err := svc.UpdateProfile(user.ID, "New Name", "new@example.com")
		testutil.AssertNoError(t, err)
		if updated.FullName != "New Name" {
			t.Errorf("expected full name updated, got %q", updated.FullName)
		}
		if updated.Email != "new@example.com" {
			t.Errorf("expected email updated, got %q", updated.Email)
		}
	})

	t.Run("email_taken", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateProfile(user2.ID, "Name", user1.Email)
		testutil.AssertAppError(t, err, "EMAIL_IN_USE")
	})

	t.Run("keeping_own_email_is_fine", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.UpdateProfile(user.ID, "Name", user.Email)
		testutil.AssertNoError(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.ChangePassword(user.ID, "password123", "newpassword1")
		testutil.AssertNoError(t, err)

		_, err = svc.Authenticate(user.Username, "newpassword1")
		testutil.AssertNoError(t, err)
	})

	t.Run("wrong_current_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.ChangePassword(user.ID, "notmypassword", "newpassword1")
		testutil.AssertAppError(t, err, "WRONG_PASSWORD")
	})
}
