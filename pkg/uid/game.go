package uid

import "github.com/google/uuid"

// GenerateGameID returns a random (v4) UUID string.
func GenerateGameID() string {
	return uuid.NewString()
}

// IsGameID reports whether s looks like an ID from GenerateGameID.
func IsGameID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
