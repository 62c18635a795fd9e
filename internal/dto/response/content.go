package response

import (
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
)

type HomePageResponse struct {
	Title     string  `json:"title"`
	Subtitle  string  `json:"subtitle"`
	HeroImage *string `json:"hero_image,omitempty"`
}

type AboutPageResponse struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Image   *string `json:"image,omitempty"`
}

type TeamMemberResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Image       *string `json:"image,omitempty"`
	Description string  `json:"description"`
}

type TestimonialResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Comment  string  `json:"comment"`
	Rating   int     `json:"rating"`
	Image    *string `json:"image,omitempty"`
}

type FAQResponse struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Category *string `json:"category,omitempty"`
	Order    int     `json:"display_order"`
}

type BlogResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	AuthorID      *string   `json:"author_id,omitempty"`
	Content       string    `json:"content"`
	Image         *string   `json:"image,omitempty"`
	PublishedDate time.Time `json:"published_date"`
}

type GalleryItemResponse struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Image         string  `json:"image"`
	SafariID      *string `json:"safari_id,omitempty"`
	DestinationID *string `json:"destination_id,omitempty"`
}

type ChatMessageResponse struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Sender    entity.ChatSender `json:"sender"`
	CreatedAt time.Time         `json:"created_at"`
}

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func TeamMemberToResponse(m *entity.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Role:        m.Role,
		Image:       m.Image,
		Description: m.Description,
	}
}

func TestimonialToResponse(t *entity.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:       t.ID.String(),
		Name:     t.Name,
		Location: t.Location,
		Comment:  t.Comment,
		Rating:   t.Rating,
		Image:    t.Image,
	}
}

func FAQToResponse(f *entity.FAQ) FAQResponse {
	return FAQResponse{
		ID:       f.ID.String(),
		Question: f.Question,
		Answer:   f.Answer,
		Category: f.Category,
		Order:    f.Order,
	}
}

func FAQsToResponse(faqs []*entity.FAQ) []FAQResponse {
	out := make([]FAQResponse, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, FAQToResponse(f))
	}
	return out
}

func BlogToResponse(b *entity.Blog) BlogResponse {
	resp := BlogResponse{
		ID:            b.ID.String(),
		Title:         b.Title,
		Slug:          b.Slug,
		Content:       b.Content,
		Image:         b.Image,
		PublishedDate: b.PublishedDate,
	}
	if b.AuthorID != nil {
		id := b.AuthorID.String()
		resp.AuthorID = &id
	}
	return resp
}

func BlogsToResponse(blogs []*entity.Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, BlogToResponse(b))
	}
	return out
}

func GalleryItemToResponse(g *entity.Gallery) GalleryItemResponse {
	resp := GalleryItemResponse{
		ID:          g.ID.String(),
		Title:       g.Title,
		Description: g.Description,
		Image:       g.Image,
	}
	if g.SafariID != nil {
		id := g.SafariID.String()
		resp.SafariID = &id
	}
	if g.DestinationID != nil {
		id := g.DestinationID.String()
		resp.DestinationID = &id
	}
	return resp
}

func GalleryItemsToResponse(items []*entity.Gallery) []GalleryItemResponse {
	out := make([]GalleryItemResponse, 0, len(items))
	for _, g := range items {
		out = append(out, GalleryItemToResponse(g))
	}
	return out
}

func ChatMessageToResponse(m *entity.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        m.ID.String(),
		Text:      m.Text,
		Sender:    m.Sender,
		CreatedAt: m.CreatedAt,
	}
}

func ContactMessageToResponse(m *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

func ContactMessagesToResponse(messages []*entity.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ContactMessageToResponse(m))
	}
	return out
}
