package domain

import "time"

// MediaType classifies a catalog entry.
type MediaType string

const (
	MediaTypeMovie  MediaType = "FILME"
	MediaTypeSeries MediaType = "SERIE"
)

// IsValid reports whether the value is one of the known media types.
func (t MediaType) IsValid() bool {
	return t == MediaTypeMovie || t == MediaTypeSeries
}

// MediaItem represents a single entry in the streaming catalog, keyed by a
// generated MediaID that is never reused. The JSON field names are the wire
// contract the client applications already speak.
type MediaItem struct {
	MediaID      string    `json:"mediaId"`
	Title        string    `json:"titulo"`
	Description  string    `json:"descricao"`
	Type         MediaType `json:"tipo"`
	ReleaseYear  int       `json:"anoLancamento"`
	Genre        string    `json:"genero"`
	ThumbnailURL string    `json:"urlThumbnail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MediaUpdate carries a partial set of fields to merge into an existing
// item. Nil pointers mean "leave unchanged".
type MediaUpdate struct {
	Title        *string
	Description  *string
	Type         *MediaType
	ReleaseYear  *int
	Genre        *string
	ThumbnailURL *string
}
