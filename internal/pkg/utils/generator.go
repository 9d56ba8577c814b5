package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateChatSessionID() string {
	return uuid.New().String()
}

func GenerateChatMessageID() string {
	return uuid.New().String()
}

// GenerateInstanceID identifies this process on the patient events queue.
func GenerateInstanceID() string {
	return uuid.New().String()
}
