package models

import "time"

// Trip is the top-level container: metadata plus an ordered-by-day set of
// itinerary items stored in their own collection.
type Trip struct {
	TripID    string `json:"tripid" bson:"tripid,omitempty"`
	ShortID   string `json:"short_id" bson:"short_id"`
	UserID    string `json:"user_id" bson:"user_id"`
	Name      string `json:"name" bson:"name"`
	StartDate string `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Travelers int    `json:"travelers" bson:"travelers"`
	// Budget is informational only, never enforced against item cost.
	Budget             float64   `json:"budget" bson:"budget"`
	IsPublic           bool      `json:"is_public" bson:"is_public"`
	AllowComments      bool      `json:"allow_comments" bson:"allow_comments"`
	AllowCollaboration bool      `json:"allow_collaboration" bson:"allow_collaboration"`
	Tags               []string  `json:"tags" bson:"tags"`
	CoverURL           string    `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	ViewsCount         int64     `json:"views_count" bson:"views_count"`
	LikesCount         int64     `json:"likes_count" bson:"likes_count"`
	CommentsCount      int64     `json:"comments_count" bson:"comments_count"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" bson:"updated_at"`
}

// ItineraryItem is a single bookable unit placed on a specific day of a trip.
// Descriptive fields are copied from the catalog entry at add-time; a later
// catalog edit does not propagate.
type ItineraryItem struct {
	ItemID      string `json:"id" bson:"itemid"`
	TripID      string `json:"trip_id,omitempty" bson:"trip_id"`
	Type        string `json:"type" bson:"type"` // island/activity/hotel/event
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Day         int    `json:"day" bson:"day"`
	// Time is an "HH:MM"-shaped string used only for same-day ordering.
	Time         string  `json:"time,omitempty" bson:"time,omitempty"`
	Duration     string  `json:"duration,omitempty" bson:"duration,omitempty"`
	Location     string  `json:"location,omitempty" bson:"location,omitempty"`
	Price        float64 `json:"price" bson:"price"`
	ImageURL     string  `json:"image,omitempty" bson:"image_url,omitempty"`
	Category     string  `json:"category,omitempty" bson:"category,omitempty"`
	Rating       float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	ExternalID   string  `json:"external_id,omitempty" bson:"external_id,omitempty"`
	ExternalType string  `json:"external_type,omitempty" bson:"external_type,omitempty"`
	SortOrder    int     `json:"sort_order" bson:"sort_order"`
}

type TripComment struct {
	CommentID string    `json:"commentid" bson:"commentid"`
	TripID    string    `json:"trip_id" bson:"trip_id"`
	CreatedBy string    `json:"created_by" bson:"created_by"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type TripCollaborator struct {
	TripID    string    `json:"trip_id" bson:"trip_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Role      string    `json:"role" bson:"role"` // viewer/editor
	AddedBy   string    `json:"added_by" bson:"added_by"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Password      string    `json:"password,omitempty" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"-" bson:"last_login,omitempty"`
}
