package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/entity"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/data/repository"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/response"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContentService interface {
	// Site pages
	GetHomePage(ctx context.Context) (*response.HomePageResponse, error)
	GetAboutPage(ctx context.Context) (*response.AboutPageResponse, error)
	GetTeamMembers(ctx context.Context) ([]response.TeamMemberResponse, error)
	GetTestimonials(ctx context.Context) ([]response.TestimonialResponse, error)

	// FAQs
	ListFAQs(ctx context.Context, category string) ([]response.FAQResponse, error)
	CreateFAQ(ctx context.Context, req *request.CreateFAQRequest) (*response.FAQResponse, error)
	UpdateFAQ(ctx context.Context, id string, req *request.UpdateFAQRequest) (*response.FAQResponse, error)
	DeleteFAQ(ctx context.Context, id string) error

	// Blog
	ListBlogs(ctx context.Context) ([]response.BlogResponse, error)
	GetBlogBySlug(ctx context.Context, slug string) (*response.BlogResponse, error)
	CreateBlog(ctx context.Context, authorID string, req *request.CreateBlogRequest) (*response.BlogResponse, error)
	UpdateBlog(ctx context.Context, id string, req *request.UpdateBlogRequest) (*response.BlogResponse, error)
	DeleteBlog(ctx context.Context, id string) error

	// Gallery
	ListGallery(ctx context.Context, safariID, destinationID string) ([]response.GalleryItemResponse, error)
	CreateGalleryItem(ctx context.Context, req *request.CreateGalleryItemRequest) (*response.GalleryItemResponse, error)
	DeleteGalleryItem(ctx context.Context, id string) error

	// Contact and newsletter
	SubmitContactMessage(ctx context.Context, req *request.CreateContactMessageRequest) (*response.ContactMessageResponse, error)
	ListContactMessages(ctx context.Context) ([]response.ContactMessageResponse, error)
	SendChatMessage(ctx context.Context, req *request.CreateChatMessageRequest) (*response.ChatMessageResponse, error)
	SubscribeNewsletter(ctx context.Context, req *request.SubscribeNewsletterRequest) error
}

type contentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContentService(repo *repository.Repository, log *zap.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log.With(zap.String("service", "content")),
	}
}

func (s *contentService) GetHomePage(ctx context.Context) (*response.HomePageResponse, error) {
	page, err := s.repo.Content.GetHomePage(ctx)
	if err != nil {
		return nil, fmt.Errorf("get home page: %w", err)
	}
	if page == nil {
		return nil, fmt.Errorf("home page not found")
	}

	return &response.HomePageResponse{
		Title:     page.Title,
		Subtitle:  page.Subtitle,
		HeroImage: page.HeroImage,
	}, nil
}

func (s *contentService) GetAboutPage(ctx context.Context) (*response.AboutPageResponse, error) {
	page, err := s.repo.Content.GetAboutPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("get about page: %w", err)
	}
	if page == nil {
		return nil, fmt.Errorf("about page not found")
	}

	return &response.AboutPageResponse{
		Title:   page.Title,
		Content: page.Content,
		Image:   page.Image,
	}, nil
}

func (s *contentService) GetTeamMembers(ctx context.Context) ([]response.TeamMemberResponse, error) {
	members, err := s.repo.Content.FindTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	out := make([]response.TeamMemberResponse, 0, len(members))
	for _, member := range members {
		out = append(out, response.TeamMemberToResponse(member))
	}
	return out, nil
}

func (s *contentService) GetTestimonials(ctx context.Context) ([]response.TestimonialResponse, error) {
	testimonials, err := s.repo.Content.FindTestimonials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	out := make([]response.TestimonialResponse, 0, len(testimonials))
	for _, testimonial := range testimonials {
		out = append(out, response.TestimonialToResponse(testimonial))
	}
	return out, nil
}

func (s *contentService) ListFAQs(ctx context.Context, category string) ([]response.FAQResponse, error) {
	faqs, err := s.repo.FAQ.FindAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list FAQs: %w", err)
	}
	return response.FAQsToResponse(faqs), nil
}

func (s *contentService) CreateFAQ(ctx context.Context, req *request.CreateFAQRequest) (*response.FAQResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	faq := &entity.FAQ{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Order:    req.Order,
	}

	if err := s.repo.FAQ.Create(ctx, faq); err != nil {
		return nil, fmt.Errorf("create FAQ: %w", err)
	}

	resp := response.FAQToResponse(faq)
	return &resp, nil
}

func (s *contentService) UpdateFAQ(ctx context.Context, id string, req *request.UpdateFAQRequest) (*response.FAQResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	faqID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid FAQ ID format %s: %w", id, err)
	}

	faq, err := s.repo.FAQ.FindByID(ctx, faqID)
	if err != nil {
		return nil, fmt.Errorf("find FAQ: %w", err)
	}
	if faq == nil {
		return nil, fmt.Errorf("FAQ %s not found", id)
	}

	if req.Question != nil {
		faq.Question = *req.Question
	}
	if req.Answer != nil {
		faq.Answer = *req.Answer
	}
	if req.Category != nil {
		faq.Category = req.Category
	}
	if req.Order != nil {
		faq.Order = *req.Order
	}
	faq.UpdatedAt = time.Now()

	if err := s.repo.FAQ.Update(ctx, faq); err != nil {
		return nil, fmt.Errorf("update FAQ: %w", err)
	}

	resp := response.FAQToResponse(faq)
	return &resp, nil
}

func (s *contentService) DeleteFAQ(ctx context.Context, id string) error {
	faqID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid FAQ ID format %s: %w", id, err)
	}
	return s.repo.FAQ.Delete(ctx, faqID)
}

func (s *contentService) ListBlogs(ctx context.Context) ([]response.BlogResponse, error) {
	blogs, err := s.repo.Blog.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return response.BlogsToResponse(blogs), nil
}

func (s *contentService) GetBlogBySlug(ctx context.Context, slug string) (*response.BlogResponse, error) {
	blog, err := s.repo.Blog.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	if blog == nil {
		return nil, fmt.Errorf("blog post %s not found", slug)
	}

	resp := response.BlogToResponse(blog)
	return &resp, nil
}

func (s *contentService) CreateBlog(ctx context.Context, authorID string, req *request.CreateBlogRequest) (*response.BlogResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var authorUUID *uuid.UUID
	if authorID != "" {
		parsed, err := uuid.Parse(authorID)
		if err != nil {
			return nil, fmt.Errorf("invalid author ID format %s: %w", authorID, err)
		}
		authorUUID = &parsed
	}

	publishedDate := time.Now()
	if req.PublishedDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.PublishedDate)
		if err != nil {
			return nil, fmt.Errorf("invalid published date %s: %w", *req.PublishedDate, err)
		}
		publishedDate = parsed
	}

	now := time.Now()
	blog := &entity.Blog{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:         req.Title,
		Slug:          utils.Slugify(req.Title),
		AuthorID:      authorUUID,
		Content:       req.Content,
		Image:         req.Image,
		PublishedDate: publishedDate,
	}

	if err := s.repo.Blog.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}

	s.log.Info("Blog post created",
		zap.String("blog_id", blog.ID.String()),
		zap.String("slug", blog.Slug),
	)

	resp := response.BlogToResponse(blog)
	return &resp, nil
}

func (s *contentService) UpdateBlog(ctx context.Context, id string, req *request.UpdateBlogRequest) (*response.BlogResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	blogID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid blog ID format %s: %w", id, err)
	}

	blog, err := s.repo.Blog.FindByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("find blog post: %w", err)
	}
	if blog == nil {
		return nil, fmt.Errorf("blog post %s not found", id)
	}

	if req.Title != nil {
		blog.Title = *req.Title
		blog.Slug = utils.Slugify(*req.Title)
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Image != nil {
		blog.Image = req.Image
	}
	if req.PublishedDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.PublishedDate)
		if err != nil {
			return nil, fmt.Errorf("invalid published date %s: %w", *req.PublishedDate, err)
		}
		blog.PublishedDate = parsed
	}
	blog.UpdatedAt = time.Now()

	if err := s.repo.Blog.Update(ctx, blog); err != nil {
		return nil, fmt.Errorf("update blog post: %w", err)
	}

	resp := response.BlogToResponse(blog)
	return &resp, nil
}

func (s *contentService) DeleteBlog(ctx context.Context, id string) error {
	blogID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid blog ID format %s: %w", id, err)
	}
	return s.repo.Blog.Delete(ctx, blogID)
}

func (s *contentService) ListGallery(ctx context.Context, safariID, destinationID string) ([]response.GalleryItemResponse, error) {
	var safariUUID, destinationUUID *uuid.UUID

	if safariID != "" {
		parsed, err := uuid.Parse(safariID)
		if err != nil {
			return nil, fmt.Errorf("invalid safari ID format %s: %w", safariID, err)
		}
		safariUUID = &parsed
	}
	if destinationID != "" {
		parsed, err := uuid.Parse(destinationID)
		if err != nil {
			return nil, fmt.Errorf("invalid destination ID format %s: %w", destinationID, err)
		}
		destinationUUID = &parsed
	}

	items, err := s.repo.Gallery.FindAll(ctx, safariUUID, destinationUUID)
	if err != nil {
		return nil, fmt.Errorf("list gallery: %w", err)
	}
	return response.GalleryItemsToResponse(items), nil
}

func (s *contentService) CreateGalleryItem(ctx context.Context, req *request.CreateGalleryItemRequest) (*response.GalleryItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	item := &entity.Gallery{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}

	if req.SafariID != nil {
		parsed, err := uuid.Parse(*req.SafariID)
		if err != nil {
			return nil, fmt.Errorf("invalid safari ID format %s: %w", *req.SafariID, err)
		}
		item.SafariID = &parsed
	}
	if req.DestinationID != nil {
		parsed, err := uuid.Parse(*req.DestinationID)
		if err != nil {
			return nil, fmt.Errorf("invalid destination ID format %s: %w", *req.DestinationID, err)
		}
		item.DestinationID = &parsed
	}

	if err := s.repo.Gallery.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create gallery item: %w", err)
	}

	resp := response.GalleryItemToResponse(item)
	return &resp, nil
}

func (s *contentService) DeleteGalleryItem(ctx context.Context, id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid gallery item ID format %s: %w", id, err)
	}
	return s.repo.Gallery.Delete(ctx, itemID)
}

func (s *contentService) SubmitContactMessage(ctx context.Context, req *request.CreateContactMessageRequest) (*response.ContactMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	message := &entity.ContactMessage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.repo.Contact.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	s.log.Info("Contact message received", zap.String("email", req.Email))

	resp := response.ContactMessageToResponse(message)
	return &resp, nil
}

func (s *contentService) ListContactMessages(ctx context.Context) ([]response.ContactMessageResponse, error) {
	messages, err := s.repo.Contact.FindMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return response.ContactMessagesToResponse(messages), nil
}

// SendChatMessage stores the visitor's message and answers with a canned
// reply keyed on a few common topics.
func (s *contentService) SendChatMessage(ctx context.Context, req *request.CreateChatMessageRequest) (*response.ChatMessageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userMessage := &entity.ChatMessage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Text:   req.Text,
		Sender: entity.ChatSenderUser,
	}
	if err := s.repo.Contact.CreateChatMessage(ctx, userMessage); err != nil {
		return nil, fmt.Errorf("store chat message: %w", err)
	}

	botMessage := &entity.ChatMessage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Text:   cannedReply(req.Text),
		Sender: entity.ChatSenderBot,
	}
	if err := s.repo.Contact.CreateChatMessage(ctx, botMessage); err != nil {
		return nil, fmt.Errorf("store chat reply: %w", err)
	}

	resp := response.ChatMessageToResponse(botMessage)
	return &resp, nil
}

func (s *contentService) SubscribeNewsletter(ctx context.Context, req *request.SubscribeNewsletterRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	subscription := &entity.NewsletterSubscription{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Email: req.Email,
	}

	if err := s.repo.Contact.Subscribe(ctx, subscription); err != nil {
		return fmt.Errorf("subscribe newsletter: %w", err)
	}

	s.log.Info("Newsletter subscription added", zap.String("email", req.Email))
	return nil
}

func cannedReply(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "book"):
		return "You can book any safari from its detail page, or reach our team via the contact form for a tailored quote."
	case strings.Contains(lower, "price") || strings.Contains(lower, "cost"):
		return "Prices are listed per person on each safari page. Group discounts apply to our packages."
	case strings.Contains(lower, "pay"):
		return "We accept card and mobile payments through IntaSend, PayPal and M-Pesa, as well as bank transfer."
	default:
		return "Thanks for reaching out! Our team will get back to you shortly. For urgent matters please use the contact form."
	}
}
