package dto

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type UpdateAnnouncementRequest struct {
	Title   *string `json:"title"`
	Message *string `json:"message"`
}
