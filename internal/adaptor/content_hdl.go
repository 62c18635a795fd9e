package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/dto/request"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/usecase"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContentHandler serves the site content endpoints: home and about pages, team,
// testimonials, FAQs, blog, gallery, contact, chat and newsletter.
type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// HomePage handles GET /api/content/home (public)
func (h *ContentHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetHomePage(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get home page")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// AboutPage handles GET /api/content/about (public)
func (h *ContentHandler) AboutPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.GetAboutPage(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get about page")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// TeamMembers handles GET /api/content/team (public)
func (h *ContentHandler) TeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.GetTeamMembers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get team members")
		return
	}

	utils.ResponseSuccess(w, "success", members)
}

// Testimonials handles GET /api/content/testimonials (public)
func (h *ContentHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.GetTestimonials(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get testimonials")
		return
	}

	utils.ResponseSuccess(w, "success", testimonials)
}

// ListFAQs handles GET /api/faqs (public)
func (h *ContentHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	faqs, err := h.service.ListFAQs(r.Context(), category)
	if err != nil {
		handleServiceError(w, h.log, err, "list faqs")
		return
	}

	utils.ResponseSuccess(w, "success", faqs)
}

// CreateFAQ handles POST /api/faqs (admin)
func (h *ContentHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	faq, err := h.service.CreateFAQ(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create faq")
		return
	}

	utils.ResponseCreated(w, "success", faq)
}

// UpdateFAQ handles PUT /api/faqs/{id} (admin)
func (h *ContentHandler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	faq, err := h.service.UpdateFAQ(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update faq")
		return
	}

	utils.ResponseSuccess(w, "success", faq)
}

// DeleteFAQ handles DELETE /api/faqs/{id} (admin)
func (h *ContentHandler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteFAQ(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete faq")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ListBlogs handles GET /api/blogs (public)
func (h *ContentHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.service.ListBlogs(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list blogs")
		return
	}

	utils.ResponseSuccess(w, "success", blogs)
}

// GetBlog handles GET /api/blogs/{slug} (public)
func (h *ContentHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	blog, err := h.service.GetBlogBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, h.log, err, "get blog")
		return
	}

	utils.ResponseSuccess(w, "success", blog)
}

// CreateBlog handles POST /api/blogs (admin)
func (h *ContentHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	blog, err := h.service.CreateBlog(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create blog")
		return
	}

	utils.ResponseCreated(w, "success", blog)
}

// UpdateBlog handles PUT /api/blogs/{id} (admin)
func (h *ContentHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	blog, err := h.service.UpdateBlog(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update blog")
		return
	}

	utils.ResponseSuccess(w, "success", blog)
}

// DeleteBlog handles DELETE /api/blogs/{id} (admin)
func (h *ContentHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteBlog(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete blog")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ListGallery handles GET /api/gallery (public)
func (h *ContentHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	safariID := r.URL.Query().Get("safari_id")
	destinationID := r.URL.Query().Get("destination_id")

	items, err := h.service.ListGallery(r.Context(), safariID, destinationID)
	if err != nil {
		handleServiceError(w, h.log, err, "list gallery")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// CreateGalleryItem handles POST /api/gallery (admin)
func (h *ContentHandler) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGalleryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.CreateGalleryItem(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create gallery item")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// DeleteGalleryItem handles DELETE /api/gallery/{id} (admin)
func (h *ContentHandler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteGalleryItem(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete gallery item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SubmitContact handles POST /api/contact (public)
func (h *ContentHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req request.CreateContactMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	message, err := h.service.SubmitContactMessage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit contact message")
		return
	}

	utils.ResponseCreated(w, "success", message)
}

// ListContactMessages handles GET /api/contact (admin)
func (h *ContentHandler) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListContactMessages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list contact messages")
		return
	}

	utils.ResponseSuccess(w, "success", messages)
}

// Chat handles POST /api/chat (public)
func (h *ContentHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req request.CreateChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reply, err := h.service.SendChatMessage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "send chat message")
		return
	}

	utils.ResponseSuccess(w, "success", reply)
}

// Subscribe handles POST /api/newsletter/subscribe (public)
func (h *ContentHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req request.SubscribeNewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SubscribeNewsletter(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "subscribe newsletter")
		return
	}

	utils.ResponseCreated(w, "success", nil)
}
