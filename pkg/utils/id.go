package utils

import (
	"github.com/google/uuid"
)

// GenerateID generates a new UUID v4 string
func GenerateID() string {
	return uuid.New().String()
}

// IsValidUUID checks whether a string is a valid UUID
func IsValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}
