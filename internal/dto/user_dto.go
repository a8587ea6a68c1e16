package dto

import "gorm.io/datatypes"

type CreateUserRequest struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=8"`
	Name     string   `json:"name" validate:"required"`
	Plan     string   `json:"plan" validate:"required,oneof=basic advanced premium"`
	Phone    *string  `json:"phone"`
	Roles    []string `json:"roles" validate:"omitempty,dive,oneof=user admin"`
}

// UpdateUserRequest carries partial updates; nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string        `json:"name"`
	Phone    *string        `json:"phone"`
	Plan     *string        `json:"plan" validate:"omitempty,oneof=basic advanced premium"`
	Roles    []string       `json:"roles" validate:"omitempty,dive,oneof=user admin"`
	IsActive *bool          `json:"isActive"`
	Progress datatypes.JSON `json:"progress"`
	Password *string        `json:"password" validate:"omitempty,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

type DashboardStats struct {
	TotalUsers         int64 `json:"totalUsers"`
	ActiveUsers        int64 `json:"activeUsers"`
	TotalRequests      int64 `json:"totalRequests"`
	PendingRequests    int64 `json:"pendingRequests"`
	ApprovedRequests   int64 `json:"approvedRequests"`
	RejectedRequests   int64 `json:"rejectedRequests"`
	TotalContent       int64 `json:"totalContent"`
	TotalAnnouncements int64 `json:"totalAnnouncements"`
}
