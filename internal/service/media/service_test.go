package media

import (
	"context"
	"testing"

	"streaming-backend/internal/domain"
	"streaming-backend/internal/repository/mocks"
	"streaming-backend/pkg/api"
	appErrors "streaming-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() (*Service, *mocks.MockMediaRepository) {
	repo := mocks.NewMockMediaRepository()
	return NewService(repo, zap.NewNop()), repo
}

func validCreateRequest() api.CreateMediaRequest {
	return api.CreateMediaRequest{
		Title:       "O Auto da Compadecida",
		Description: "Aventuras de João Grilo e Chicó",
		Type:        "FILME",
		ReleaseYear: 2000,
		Genre:       "Comédia",
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		service, _ := newTestService()

		item, err := service.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.NotEmpty(t, item.MediaID)
		assert.Equal(t, "O Auto da Compadecida", item.Title)
		assert.Equal(t, domain.MediaTypeMovie, item.Type)
		assert.False(t, item.CreatedAt.IsZero())

		stored, err := service.Get(ctx, item.MediaID)
		require.NoError(t, err)
		assert.Equal(t, item.MediaID, stored.MediaID)
		assert.Equal(t, item.Genre, stored.Genre)
	})

	t.Run("FreshIDPerItem", func(t *testing.T) {
		service, _ := newTestService()

		first, err := service.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		second, err := service.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		assert.NotEqual(t, first.MediaID, second.MediaID)
	})

	t.Run("MissingFields", func(t *testing.T) {
		service, _ := newTestService()

		req := validCreateRequest()
		req.Description = ""
		_, err := service.Create(ctx, req)
		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
	})

	t.Run("InvalidType", func(t *testing.T) {
		service, _ := newTestService()

		req := validCreateRequest()
		req.Type = "NOVELA"
		_, err := service.Create(ctx, req)
		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
	})

	t.Run("RepositoryError", func(t *testing.T) {
		service, repo := newTestService()
		repo.SetError("Create", appErrors.NewInternal("database error", nil))

		_, err := service.Create(ctx, validCreateRequest())
		require.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Get(ctx, "does-not-exist")
		require.Error(t, err)
		assert.True(t, appErrors.IsNotFound(err))
	})

	t.Run("MissingID", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Get(ctx, "")
		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyCatalog", func(t *testing.T) {
		service, _ := newTestService()

		items, err := service.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("ReturnsAllItems", func(t *testing.T) {
		service, _ := newTestService()

		_, err := service.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		_, err = service.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		items, err := service.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdateTouchesOnlyGivenFields", func(t *testing.T) {
		service, _ := newTestService()

		item, err := service.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		genre := "Comedy"
		updated, err := service.Update(ctx, item.MediaID, api.UpdateMediaRequest{Genre: &genre})
		require.NoError(t, err)

		assert.Equal(t, "Comedy", updated.Genre)
		assert.Equal(t, item.Title, updated.Title)
		assert.Equal(t, item.Description, updated.Description)
		assert.Equal(t, item.ReleaseYear, updated.ReleaseYear)
		assert.Equal(t, item.Type, updated.Type)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		service, _ := newTestService()

		item, err := service.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = service.Update(ctx, item.MediaID, api.UpdateMediaRequest{})
		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
	})

	t.Run("InvalidType", func(t *testing.T) {
		service, _ := newTestService()

		item, err := service.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		badType := "NOVELA"
		_, err = service.Update(ctx, item.MediaID, api.UpdateMediaRequest{Type: &badType})
		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
	})

	t.Run("NotFound", func(t *testing.T) {
		service, _ := newTestService()

		genre := "Drama"
		_, err := service.Update(ctx, "does-not-exist", api.UpdateMediaRequest{Genre: &genre})
		require.Error(t, err)
		assert.True(t, appErrors.IsNotFound(err))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent", func(t *testing.T) {
		service, _ := newTestService()

		item, err := service.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		require.NoError(t, service.Delete(ctx, item.MediaID))
		// Second delete of the same id succeeds silently.
		require.NoError(t, service.Delete(ctx, item.MediaID))

		_, err = service.Get(ctx, item.MediaID)
		assert.True(t, appErrors.IsNotFound(err))
	})

	t.Run("MissingID", func(t *testing.T) {
		service, _ := newTestService()

		err := service.Delete(ctx, "")
		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
	})
}
