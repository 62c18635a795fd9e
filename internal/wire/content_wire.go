package wire

import (
	"github.com/solvotoursandsafaris/solvotoursandsafaris/internal/adaptor"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/middleware"
	"github.com/solvotoursandsafaris/solvotoursandsafaris/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContent(
	r chi.Router,
	contentHandler *adaptor.ContentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/content/home", contentHandler.HomePage)
	r.Get("/api/content/about", contentHandler.AboutPage)
	r.Get("/api/content/team", contentHandler.TeamMembers)
	r.Get("/api/content/testimonials", contentHandler.Testimonials)

	r.Get("/api/faqs", contentHandler.ListFAQs)
	r.Get("/api/blogs", contentHandler.ListBlogs)
	r.Get("/api/blogs/{slug}", contentHandler.GetBlog)
	r.Get("/api/gallery", contentHandler.ListGallery)

	r.Post("/api/contact", contentHandler.SubmitContact)
	r.Post("/api/chat", contentHandler.Chat)
	r.Post("/api/newsletter/subscribe", contentHandler.Subscribe)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/faqs", contentHandler.CreateFAQ)
		r.Put("/api/admin/faqs/{id}", contentHandler.UpdateFAQ)
		r.Delete("/api/admin/faqs/{id}", contentHandler.DeleteFAQ)

		r.Post("/api/admin/blogs", contentHandler.CreateBlog)
		r.Put("/api/admin/blogs/{id}", contentHandler.UpdateBlog)
		r.Delete("/api/admin/blogs/{id}", contentHandler.DeleteBlog)

		r.Post("/api/admin/gallery", contentHandler.CreateGalleryItem)
		r.Delete("/api/admin/gallery/{id}", contentHandler.DeleteGalleryItem)

		r.Get("/api/admin/contact", contentHandler.ListContactMessages)
	})
}
