package entity

import (
	"time"

	"github.com/google/uuid"
)

// Flat site-content records. No relational weight beyond optional FKs.

type HomePage struct {
	Base
	Title     string  `db:"title"`
	Subtitle  string  `db:"subtitle"`
	HeroImage *string `db:"hero_image"`
}

type AboutPage struct {
	Base
	Title   string  `db:"title"`
	Content string  `db:"content"`
	Image   *string `db:"image"`
}

type TeamMember struct {
	Base
	Name        string  `db:"name"`
	Role        string  `db:"role"`
	Image       *string `db:"image"`
	Description string  `db:"description"`
}

type Testimonial struct {
	Base
	Name     string  `db:"name"`
	Location string  `db:"location"`
	Comment  string  `db:"comment"`
	Rating   int     `db:"rating"`
	Image    *string `db:"image"`
}

type FAQ struct {
	Base
	Question string  `db:"question"`
	Answer   string  `db:"answer"`
	Category *string `db:"category"`
	Order    int     `db:"display_order"`
}

type Blog struct {
	Base
	Title         string     `db:"title"`
	Slug          string     `db:"slug"`
	AuthorID      *uuid.UUID `db:"author_id"`
	Content       string     `db:"content"`
	Image         *string    `db:"image"`
	PublishedDate time.Time  `db:"published_date"`
}

type Gallery struct {
	BaseSimple
	Title         string     `db:"title"`
	Description   *string    `db:"description"`
	Image         string     `db:"image"`
	SafariID      *uuid.UUID `db:"safari_id"`
	DestinationID *uuid.UUID `db:"destination_id"`
}

type ContactMessage struct {
	BaseSimple
	Name    string `db:"name"`
	Email   string `db:"email"`
	Subject string `db:"subject"`
	Message string `db:"message"`
}

type ChatSender string

const (
	ChatSenderUser ChatSender = "user"
	ChatSenderBot  ChatSender = "bot"
)

type ChatMessage struct {
	BaseSimple
	Text   string     `db:"text"`
	Sender ChatSender `db:"sender"`
}

type NewsletterSubscription struct {
	BaseSimple
	Email string `db:"email"`
}
