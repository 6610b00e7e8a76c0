package database

import (
	"errors"
	"testing"
)

func TestCreateProfile(t *testing.T) {
	store := setupTestStore(t)

	profile, err := store.CreateProfile("alex", "1234")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	if profile.ID == 0 {
		t.Error("Profile ID should not be 0")
	}
	if profile.Name != "alex" {
		t.Errorf("Expected name 'alex', got '%s'", profile.Name)
	}
	if profile.PINHash == "" {
		t.Error("PIN hash should not be empty")
	}
	if profile.PINHash == "1234" {
		t.Error("PIN should be hashed, not stored in plain text")
	}
}

func TestCreateProfileWithoutPIN(t *testing.T) {
	store := setupTestStore(t)

	profile, err := store.CreateProfile("alex", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	if profile.HasPIN() {
		t.Error("Profile without a PIN should not report HasPIN")
	}

	// Round-trip through the database keeps the hash empty
	loaded, err := store.GetProfileByName("alex")
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}
	if loaded.HasPIN() {
		t.Error("Loaded profile without a PIN should not report HasPIN")
	}
}

func TestCreateProfileDuplicate(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("alex", ""); err != nil {
		t.Fatalf("Failed to create first profile: %v", err)
	}

	_, err := store.CreateProfile("alex", "")
	if !errors.Is(err, ErrProfileExists) {
		t.Errorf("Expected ErrProfileExists, got: %v", err)
	}
}

func TestCreateProfileCaseInsensitive(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("Alex", ""); err != nil {
		t.Fatalf("Failed to create first profile: %v", err)
	}

	_, err := store.CreateProfile("alex", "")
	if !errors.Is(err, ErrProfileExists) {
		t.Errorf("Expected ErrProfileExists for case-insensitive duplicate, got: %v", err)
	}
}

func TestCreateProfileEmptyName(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("", ""); err == nil {
		t.Error("Expected error for empty name")
	}
	if _, err := store.CreateProfile("   ", ""); err == nil {
		t.Error("Expected error for blank name")
	}
}

func TestCreateProfileShortPIN(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("alex", "12"); err == nil {
		t.Error("Expected error for short PIN")
	}
}

func TestVerifyPIN(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("alex", "1234"); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	profile, err := store.VerifyPIN("alex", "1234")
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if profile.Name != "alex" {
		t.Errorf("Expected name 'alex', got '%s'", profile.Name)
	}
	if profile.LastPlayed != nil {
		// VerifyPIN touches last_played after loading, so the returned
		// profile still carries the previous value (nil on first unlock)
		t.Errorf("Expected nil LastPlayed on first unlock, got %v", profile.LastPlayed)
	}

	// The touch is visible on the next load
	reloaded, err := store.GetProfileByName("alex")
	if err != nil {
		t.Fatalf("Failed to reload profile: %v", err)
	}
	if reloaded.LastPlayed == nil {
		t.Error("Expected last_played to be set after unlock")
	}
}

func TestVerifyPINWrongPIN(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("alex", "1234"); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	_, err := store.VerifyPIN("alex", "9999")
	if !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("Expected ErrInvalidPIN, got: %v", err)
	}
}

func TestVerifyPINUnprotectedProfile(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("alex", ""); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	// Profiles without a PIN unlock with any input
	if _, err := store.VerifyPIN("alex", ""); err != nil {
		t.Errorf("Unlock without PIN failed: %v", err)
	}
	if _, err := store.VerifyPIN("alex", "anything"); err != nil {
		t.Errorf("Unlock with ignored PIN failed: %v", err)
	}
}

func TestVerifyPINNonexistentProfile(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.VerifyPIN("nobody", "1234")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound, got: %v", err)
	}
}

func TestVerifyPINCaseInsensitive(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("Alex", "1234"); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	profile, err := store.VerifyPIN("ALEX", "1234")
	if err != nil {
		t.Fatalf("Case-insensitive unlock failed: %v", err)
	}
	if profile.Name != "Alex" {
		t.Errorf("Expected stored name 'Alex', got '%s'", profile.Name)
	}
}

func TestGetProfileByID(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.CreateProfile("alex", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	profile, err := store.GetProfileByID(created.ID)
	if err != nil {
		t.Fatalf("Failed to get profile by ID: %v", err)
	}
	if profile.Name != "alex" {
		t.Errorf("Expected name 'alex', got '%s'", profile.Name)
	}

	_, err = store.GetProfileByID(99999)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound, got: %v", err)
	}
}

func TestListProfiles(t *testing.T) {
	store := setupTestStore(t)

	names := []string{"alex", "sam", "jo"}
	for _, name := range names {
		if _, err := store.CreateProfile(name, ""); err != nil {
			t.Fatalf("Failed to create profile %s: %v", name, err)
		}
	}

	profiles, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("Failed to list profiles: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("Expected 3 profiles, got %d", len(profiles))
	}

	// None have been played, so order falls back to name
	wantOrder := []string{"alex", "jo", "sam"}
	for i, want := range wantOrder {
		if profiles[i].Name != want {
			t.Errorf("profiles[%d].Name = %q, want %q", i, profiles[i].Name, want)
		}
	}
}

func TestListProfilesRecentFirst(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("alex", ""); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	if _, err := store.CreateProfile("sam", ""); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	// Playing sam moves it ahead of alex
	if _, err := store.VerifyPIN("sam", ""); err != nil {
		t.Fatalf("Failed to unlock profile: %v", err)
	}

	profiles, err := store.ListProfiles()
	if err != nil {
		t.Fatalf("Failed to list profiles: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].Name != "sam" {
		t.Errorf("Expected most recently played profile first, got '%s'", profiles[0].Name)
	}
}

func TestSetPIN(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.CreateProfile("alex", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	if err := store.SetPIN(created.ID, "4321"); err != nil {
		t.Fatalf("Failed to set PIN: %v", err)
	}

	if _, err := store.VerifyPIN("alex", "4321"); err != nil {
		t.Errorf("Unlock with new PIN failed: %v", err)
	}
	if _, err := store.VerifyPIN("alex", "1234"); !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("Expected ErrInvalidPIN with wrong PIN, got: %v", err)
	}
}

func TestSetPINClears(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.CreateProfile("alex", "1234")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	if err := store.SetPIN(created.ID, ""); err != nil {
		t.Fatalf("Failed to clear PIN: %v", err)
	}

	profile, err := store.GetProfileByName("alex")
	if err != nil {
		t.Fatalf("Failed to load profile: %v", err)
	}
	if profile.HasPIN() {
		t.Error("Profile should not have a PIN after clearing")
	}
}

func TestChangePIN(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.CreateProfile("alex", "1234")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	if err := store.ChangePIN(created.ID, "1234", "5678"); err != nil {
		t.Fatalf("Failed to change PIN: %v", err)
	}
	if _, err := store.VerifyPIN("alex", "5678"); err != nil {
		t.Errorf("Unlock with changed PIN failed: %v", err)
	}

	// Wrong current PIN is rejected
	if err := store.ChangePIN(created.ID, "0000", "9999"); !errors.Is(err, ErrInvalidPIN) {
		t.Errorf("Expected ErrInvalidPIN, got: %v", err)
	}
}

func TestProfileExists(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.CreateProfile("alex", ""); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	exists, err := store.ProfileExists("alex")
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}
	if !exists {
		t.Error("Expected profile to exist")
	}

	exists, err = store.ProfileExists("ALEX")
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}
	if !exists {
		t.Error("Expected case-insensitive match to exist")
	}

	exists, err = store.ProfileExists("nobody")
	if err != nil {
		t.Fatalf("Failed to check existence: %v", err)
	}
	if exists {
		t.Error("Expected profile to not exist")
	}
}

func TestDeleteProfile(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.CreateProfile("alex", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	if err := store.DeleteProfile(created.ID); err != nil {
		t.Fatalf("Failed to delete profile: %v", err)
	}

	if _, err := store.GetProfileByID(created.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound after delete, got: %v", err)
	}

	if err := store.DeleteProfile(created.ID); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound for double delete, got: %v", err)
	}
}

func TestDeleteProfileRemovesSaves(t *testing.T) {
	store := setupTestStore(t)

	created, err := store.CreateProfile("alex", "")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	err = store.WriteSave(&Save{
		ProfileID: created.ID,
		Slot:      1,
		Version:   "1.0",
		Player:    "{}", Quests: "{}", Inventory: "{}", Settings: "{}",
	})
	if err != nil {
		t.Fatalf("Failed to write save: %v", err)
	}

	if err := store.DeleteProfile(created.ID); err != nil {
		t.Fatalf("Failed to delete profile: %v", err)
	}

	if _, err := store.GetSave(created.ID, 1); !errors.Is(err, ErrSaveNotFound) {
		t.Errorf("Expected ErrSaveNotFound after profile delete, got: %v", err)
	}
}

func TestCountProfiles(t *testing.T) {
	store := setupTestStore(t)

	count, err := store.CountProfiles()
	if err != nil {
		t.Fatalf("Failed to count profiles: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 profiles, got %d", count)
	}

	if _, err := store.CreateProfile("alex", ""); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	count, err = store.CountProfiles()
	if err != nil {
		t.Fatalf("Failed to count profiles: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 profile, got %d", count)
	}
}
