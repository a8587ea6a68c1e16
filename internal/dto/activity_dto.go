package dto

import "github.com/google/uuid"

type HeartbeatResponse struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

type UserStatusResponse struct {
	UserID            uuid.UUID `json:"userId"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	IsActive          bool      `json:"isActive"`
	LastSeen          *int64    `json:"lastSeen"`
	LastSeenFormatted *string   `json:"lastSeenFormatted"`
}

type UserStatusListResponse struct {
	UserStatuses []UserStatusResponse `json:"userStatuses"`
	Timestamp    int64                `json:"timestamp"`
}
