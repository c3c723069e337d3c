package domain

import (
	"time"
)

// User is an account on the platform. Password is stored as given,
// opaque to this service.
type User struct {
	UserID    int       `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Subscription is a purchasable plan. Users attach to plans through
// UserSubscription rows.
type Subscription struct {
	SubscriptionID int       `json:"subscription_id" db:"subscription_id"`
	Name           string    `json:"name" db:"name"`
	Price          float64   `json:"price" db:"price"`
	DurationDays   int       `json:"duration_days" db:"duration_days"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// UserSubscription links a user to a subscription plan for a date range.
// The (user_id, subscription_id) pair is the composite key.
type UserSubscription struct {
	UserID         int       `json:"user_id" db:"user_id"`
	SubscriptionID int       `json:"subscription_id" db:"subscription_id"`
	StartDate      time.Time `json:"start_date" db:"start_date"`
	EndDate        time.Time `json:"end_date" db:"end_date"`
}

type Author struct {
	AuthorID  int       `json:"author_id" db:"author_id"`
	Name      string    `json:"name" db:"name"`
	Bio       *string   `json:"bio,omitempty" db:"bio"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Narrator struct {
	NarratorID int       `json:"narrator_id" db:"narrator_id"`
	Name       string    `json:"name" db:"name"`
	Bio        *string   `json:"bio,omitempty" db:"bio"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Audiobook is the central catalog entity. AuthorID is required,
// NarratorID is optional. Duration is in seconds.
type Audiobook struct {
	AudiobookID int        `json:"audiobook_id" db:"audiobook_id"`
	Title       string     `json:"title" db:"title"`
	AuthorID    int        `json:"author_id" db:"author_id"`
	NarratorID  *int       `json:"narrator_id,omitempty" db:"narrator_id"`
	Duration    int        `json:"duration" db:"duration"`
	Description *string    `json:"description,omitempty" db:"description"`
	ReleaseDate *time.Time `json:"release_date,omitempty" db:"release_date"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// Chapter belongs to one audiobook. Position is the caller-assigned
// ordering index; duplicates within an audiobook are not prevented.
type Chapter struct {
	ChapterID   int       `json:"chapter_id" db:"chapter_id"`
	AudiobookID int       `json:"audiobook_id" db:"audiobook_id"`
	Title       *string   `json:"title,omitempty" db:"title"`
	Duration    int       `json:"duration" db:"duration"`
	Position    int       `json:"position" db:"position"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Category struct {
	CategoryID int       `json:"category_id" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// AudiobookCategory links an audiobook to a category. The
// (audiobook_id, category_id) pair is the composite key.
type AudiobookCategory struct {
	AudiobookID int `json:"audiobook_id" db:"audiobook_id"`
	CategoryID  int `json:"category_id" db:"category_id"`
}

// ListeningHistory records one listening session of a user on an
// audiobook. FinishedAt stays nil while the session is open.
type ListeningHistory struct {
	HistoryID   int        `json:"history_id" db:"history_id"`
	UserID      int        `json:"user_id" db:"user_id"`
	AudiobookID int        `json:"audiobook_id" db:"audiobook_id"`
	StartedAt   time.Time  `json:"started_at" db:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty" db:"finished_at"`
}

// Bookmark marks a position (in seconds) within an audiobook,
// optionally pinned to a chapter.
type Bookmark struct {
	BookmarkID  int       `json:"bookmark_id" db:"bookmark_id"`
	UserID      int       `json:"user_id" db:"user_id"`
	AudiobookID int       `json:"audiobook_id" db:"audiobook_id"`
	ChapterID   *int      `json:"chapter_id,omitempty" db:"chapter_id"`
	Position    int       `json:"position" db:"position"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Review struct {
	ReviewID    int       `json:"review_id" db:"review_id"`
	UserID      int       `json:"user_id" db:"user_id"`
	AudiobookID int       `json:"audiobook_id" db:"audiobook_id"`
	ReviewText  *string   `json:"review_text,omitempty" db:"review_text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Rating holds a 1-5 score a user gave an audiobook.
type Rating struct {
	RatingID    int       `json:"rating_id" db:"rating_id"`
	UserID      int       `json:"user_id" db:"user_id"`
	AudiobookID int       `json:"audiobook_id" db:"audiobook_id"`
	Rating      int       `json:"rating" db:"rating"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type Purchase struct {
	PurchaseID   int       `json:"purchase_id" db:"purchase_id"`
	UserID       int       `json:"user_id" db:"user_id"`
	AudiobookID  int       `json:"audiobook_id" db:"audiobook_id"`
	PurchaseDate time.Time `json:"purchase_date" db:"purchase_date"`
}
