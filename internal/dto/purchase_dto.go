package dto

type SubmitPurchaseRequest struct {
	Name         string  `json:"name" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        string  `json:"phone" validate:"required"`
	SelectedPlan string  `json:"selectedPlan" validate:"required,oneof=basic advanced premium"`
	Message      *string `json:"message"`
}

type UpdateRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ApproveRequestBody holds the credentials for the account provisioned when
// an admin approves a purchase request.
type ApproveRequestBody struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     string  `json:"name" validate:"required"`
	Plan     string  `json:"plan" validate:"required,oneof=basic advanced premium"`
	Phone    *string `json:"phone"`
}
