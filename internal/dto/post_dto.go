package dto

type CreatePostRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	VideoURL    *string `json:"videoUrl"`
	PdfURL      *string `json:"pdfUrl"`
	DocURL      *string `json:"docUrl"`
	ImageURL    *string `json:"imageUrl"`
	Chapter     *string `json:"chapter"`
	Menu        *string `json:"menu"`
	Submenu     *string `json:"submenu"`
	OrderIndex  int     `json:"orderIndex"`
}

// UpdatePostRequest carries partial updates; nil fields are left untouched.
type UpdatePostRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	VideoURL    *string `json:"videoUrl"`
	PdfURL      *string `json:"pdfUrl"`
	DocURL      *string `json:"docUrl"`
	ImageURL    *string `json:"imageUrl"`
	Chapter     *string `json:"chapter"`
	Menu        *string `json:"menu"`
	Submenu     *string `json:"submenu"`
	OrderIndex  *int    `json:"orderIndex"`
}
