// Package api defines the contracts for API requests and responses.
// It decouples the API structure from the internal domain models.
package api

// RegisterRequest is the expected body for a POST /auth/register request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"nome" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// LoginRequest is the expected body for a POST /auth/login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"senha" validate:"required"`
}

// UserResponse is the public representation of a user. It never carries the
// password hash.
type UserResponse struct {
	Email     string `json:"email"`
	Name      string `json:"nome"`
	CreatedAt string `json:"createdAt"`
}

// RegisterResponse is the body returned by a successful registration.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"usuario"`
}

// LoginResponse carries the signed bearer token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// CreateMediaRequest is the expected body for a POST /media request.
type CreateMediaRequest struct {
	Title        string `json:"titulo" validate:"required"`
	Description  string `json:"descricao" validate:"required"`
	Type         string `json:"tipo" validate:"required"`
	ReleaseYear  int    `json:"anoLancamento" validate:"required"`
	Genre        string `json:"genero" validate:"required"`
	ThumbnailURL string `json:"urlThumbnail,omitempty"`
}

// UpdateMediaRequest is the expected body for a PUT /media/{mediaId} request.
// All fields are optional, but at least one must be present. Unknown fields
// are rejected at decode time.
type UpdateMediaRequest struct {
	Title        *string `json:"titulo,omitempty"`
	Description  *string `json:"descricao,omitempty"`
	Type         *string `json:"tipo,omitempty"`
	ReleaseYear  *int    `json:"anoLancamento,omitempty"`
	Genre        *string `json:"genero,omitempty"`
	ThumbnailURL *string `json:"urlThumbnail,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r UpdateMediaRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Type == nil &&
		r.ReleaseYear == nil && r.Genre == nil && r.ThumbnailURL == nil
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a standardized error message for API responses.
type ErrorResponse struct {
	Error string `json:"error"`
}
