// Package media implements the catalog CRUD use cases.
package media

import (
	"context"
	"fmt"
	"time"

	"streaming-backend/internal/domain"
	"streaming-backend/internal/repository"
	"streaming-backend/pkg/api"
	appErrors "streaming-backend/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the media catalog use cases.
type Service struct {
	media    repository.MediaRepository
	logger   *zap.Logger
	validate *validator.Validate
}

// NewService creates a new media service.
func NewService(media repository.MediaRepository, logger *zap.Logger) *Service {
	return &Service{
		media:    media,
		logger:   logger,
		validate: validator.New(),
	}
}

// Create stores a new catalog entry under a freshly generated id.
func (s *Service) Create(ctx context.Context, req api.CreateMediaRequest) (*domain.MediaItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.NewValidation(`campos "titulo", "descricao", "tipo", "anoLancamento" e "genero" são obrigatórios`)
	}

	mediaType := domain.MediaType(req.Type)
	if !mediaType.IsValid() {
		return nil, appErrors.NewValidation(fmt.Sprintf(`campo "tipo" deve ser %q ou %q`, domain.MediaTypeMovie, domain.MediaTypeSeries))
	}

	item := &domain.MediaItem{
		MediaID:      uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		Type:         mediaType,
		ReleaseYear:  req.ReleaseYear,
		Genre:        req.Genre,
		ThumbnailURL: req.ThumbnailURL,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.media.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, "failed to create media item")
	}

	s.logger.Info("media created", zap.String("mediaId", item.MediaID))
	return item, nil
}

// Get retrieves a single catalog entry by id.
func (s *Service) Get(ctx context.Context, mediaID string) (*domain.MediaItem, error) {
	if mediaID == "" {
		return nil, appErrors.NewValidation(`o "id" da mídia é obrigatório`)
	}

	item, err := s.media.FindByID(ctx, mediaID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, appErrors.NewNotFound("mídia não encontrada")
		}
		return nil, appErrors.Wrap(err, "failed to get media item")
	}
	return item, nil
}

// List returns every catalog entry. An empty catalog is an empty slice.
func (s *Service) List(ctx context.Context) ([]domain.MediaItem, error) {
	items, err := s.media.FindAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to list media items")
	}
	return items, nil
}

// Update merges the provided fields into an existing entry and returns the
// full item after the write. The request type is the whitelist: only known
// catalog fields can be touched.
func (s *Service) Update(ctx context.Context, mediaID string, req api.UpdateMediaRequest) (*domain.MediaItem, error) {
	if mediaID == "" {
		return nil, appErrors.NewValidation(`o "id" da mídia é obrigatório`)
	}
	if req.IsEmpty() {
		return nil, appErrors.NewValidation("nenhum campo enviado para atualizar")
	}

	update := domain.MediaUpdate{
		Title:        req.Title,
		Description:  req.Description,
		ReleaseYear:  req.ReleaseYear,
		Genre:        req.Genre,
		ThumbnailURL: req.ThumbnailURL,
	}
	if req.Type != nil {
		mediaType := domain.MediaType(*req.Type)
		if !mediaType.IsValid() {
			return nil, appErrors.NewValidation(fmt.Sprintf(`campo "tipo" deve ser %q ou %q`, domain.MediaTypeMovie, domain.MediaTypeSeries))
		}
		update.Type = &mediaType
	}

	item, err := s.media.Update(ctx, mediaID, update)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, appErrors.NewNotFound("mídia não encontrada")
		}
		return nil, appErrors.Wrap(err, "failed to update media item")
	}

	s.logger.Info("media updated", zap.String("mediaId", mediaID))
	return item, nil
}

// Delete removes a catalog entry. Deleting an id that no longer exists
// succeeds silently.
func (s *Service) Delete(ctx context.Context, mediaID string) error {
	if mediaID == "" {
		return appErrors.NewValidation(`o "id" da mídia é obrigatório`)
	}

	if err := s.media.Delete(ctx, mediaID); err != nil {
		return appErrors.Wrap(err, "failed to delete media item")
	}

	s.logger.Info("media deleted", zap.String("mediaId", mediaID))
	return nil
}
