package dto

type CreateContentRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	FileURL      *string `json:"fileUrl"`
	VideoURL     *string `json:"videoUrl"`
	LinkURL      *string `json:"linkUrl"`
	ContentType  *string `json:"contentType"`
	AllowedPlans string  `json:"allowedPlans"`
}

// UpdateContentRequest carries partial updates; nil fields are left untouched.
type UpdateContentRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	FileURL      *string `json:"fileUrl"`
	VideoURL     *string `json:"videoUrl"`
	LinkURL      *string `json:"linkUrl"`
	ContentType  *string `json:"contentType"`
	AllowedPlans *string `json:"allowedPlans"`
}
