package request

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type CreateChatMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type SubscribeNewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type CreateBlogRequest struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Content       string  `json:"content" validate:"required"`
	Image         *string `json:"image,omitempty"`
	PublishedDate *string `json:"published_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateBlogRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Content       *string `json:"content,omitempty"`
	Image         *string `json:"image,omitempty"`
	PublishedDate *string `json:"published_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type CreateFAQRequest struct {
	Question string  `json:"question" validate:"required"`
	Answer   string  `json:"answer" validate:"required"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Order    int     `json:"display_order" validate:"min=0"`
}

type UpdateFAQRequest struct {
	Question *string `json:"question,omitempty"`
	Answer   *string `json:"answer,omitempty"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=100"`
	Order    *int    `json:"display_order,omitempty" validate:"omitempty,min=0"`
}

type CreateGalleryItemRequest struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Description   *string `json:"description,omitempty"`
	Image         string  `json:"image" validate:"required"`
	SafariID      *string `json:"safari_id,omitempty" validate:"omitempty,uuid4"`
	DestinationID *string `json:"destination_id,omitempty" validate:"omitempty,uuid4"`
}
