package model

import (
	"encoding/json"
	"time"
)

// Caller is the identity every core operation is executed for.
type Caller struct {
	UserID        int64
	Authenticated bool
}

func Anonymous() Caller {
	return Caller{}
}

func Authenticated(id int64) Caller {
	return Caller{UserID: id, Authenticated: true}
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type PageRequest struct {
	Page int
	Size int
}

func (p PageRequest) Offset() uint64 {
	if p.Page < 1 {
		return 0
	}
	return uint64((p.Page - 1) * p.Size)
}

type Book struct {
	ID     int64  `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`
	Genre  string `json:"genre" db:"genre"`
}

type RatedBook struct {
	Book
	Rating *int `json:"rating" db:"rating"`
}

type BookFilter struct {
	Genre string
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []BookView `json:"items"`
}

// BookView is a listing row. Without WithRating the rating key is absent, not null.
type BookView struct {
	RatedBook
	WithRating bool
}

func (v BookView) MarshalJSON() ([]byte, error) {
	if !v.WithRating {
		return json.Marshal(v.Book)
	}
	return json.Marshal(v.RatedBook)
}

type Review struct {
	ID     int64 `json:"id" db:"id"`
	BookID int64 `json:"book_id" db:"book_id"`
	UserID int64 `json:"user_id" db:"user_id"`
	Rating int   `json:"rating" db:"rating"`
}

type CreateReviewRequest struct {
	BookID *int64 `json:"book_id" validate:"required"`
	Rating *int   `json:"rating" validate:"required"`
}

type UpdateReviewRequest struct {
	ID     *int64 `json:"id" validate:"required"`
	Rating *int   `json:"rating" validate:"required"`
}

// Affinity is the book attribute a profile is built over.
type Affinity string

const (
	AffinityGenre  Affinity = "genre"
	AffinityAuthor Affinity = "author"
)

func (a Affinity) Valid() bool {
	return a == AffinityGenre || a == AffinityAuthor
}

func (a Affinity) Of(b Book) string {
	if a == AffinityAuthor {
		return b.Author
	}
	return b.Genre
}

type AffinityCount struct {
	Value string `db:"value"`
	Count int    `db:"cnt"`
}

type ScoredBook struct {
	Book
	RelatedCount int `db:"related_count"`
}

type Suggestions struct {
	Books []Book
}

func (s Suggestions) Empty() bool {
	return len(s.Books) == 0
}

type User struct {
	ID           int64      `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	PasswordHash string     `json:"-" db:"password_hash"`
	IsStaff      bool       `json:"is_staff" db:"is_staff"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	IsSuperuser  bool       `json:"is_superuser" db:"is_superuser"`
	LastLogin    *time.Time `json:"last_login" db:"last_login"`
	DateJoined   time.Time  `json:"date_joined" db:"date_joined"`
}

type CreateUserRequest struct {
	Username  string
	Password  string
	Superuser bool
}

type TokenCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenRefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type TokenVerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword  string `json:"old_password" validate:"required"`
	NewPassword  string `json:"new_password" validate:"required"`
	NewPassword1 string `json:"new_password1" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

type ReviewCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
