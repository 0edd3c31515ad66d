// Package mocks provides in-memory implementations of the repository
// interfaces for testing services without a real database.
package mocks

import (
	"context"
	"sync"

	"streaming-backend/internal/domain"
	"streaming-backend/internal/repository"
)

// MockUserRepository is an in-memory implementation of
// repository.UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User // email -> User

	// For testing error scenarios
	shouldFailOn map[string]error
}

// NewMockUserRepository creates a new mock user repository instance.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:        make(map[string]*domain.User),
		shouldFailOn: make(map[string]error),
	}
}

// SetError configures the mock to return an error for a specific method.
func (m *MockUserRepository) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn[method] = err
}

// FindByEmail implements repository.UserRepository.
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.shouldFailOn["FindByEmail"]; err != nil {
		return nil, err
	}
	user, ok := m.users[email]
	if !ok {
		return nil, repository.NewNotFound("user", email)
	}
	copied := *user
	return &copied, nil
}

// Create implements repository.UserRepository with the same insert-if-absent
// semantics as the conditional DynamoDB write.
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.shouldFailOn["Create"]; err != nil {
		return err
	}
	if _, exists := m.users[user.Email]; exists {
		return repository.NewConflict("user", user.Email, "email already registered")
	}
	copied := *user
	m.users[user.Email] = &copied
	return nil
}

// MockMediaRepository is an in-memory implementation of
// repository.MediaRepository.
type MockMediaRepository struct {
	mu    sync.RWMutex
	items map[string]*domain.MediaItem // mediaID -> MediaItem

	shouldFailOn map[string]error
}

// NewMockMediaRepository creates a new mock media repository instance.
func NewMockMediaRepository() *MockMediaRepository {
	return &MockMediaRepository{
		items:        make(map[string]*domain.MediaItem),
		shouldFailOn: make(map[string]error),
	}
}

// SetError configures the mock to return an error for a specific method.
func (m *MockMediaRepository) SetError(method string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFailOn[method] = err
}

// Create implements repository.MediaRepository.
func (m *MockMediaRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.shouldFailOn["Create"]; err != nil {
		return err
	}
	copied := *item
	m.items[item.MediaID] = &copied
	return nil
}

// FindByID implements repository.MediaRepository.
func (m *MockMediaRepository) FindByID(ctx context.Context, mediaID string) (*domain.MediaItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.shouldFailOn["FindByID"]; err != nil {
		return nil, err
	}
	item, ok := m.items[mediaID]
	if !ok {
		return nil, repository.NewNotFound("media", mediaID)
	}
	copied := *item
	return &copied, nil
}

// FindAll implements repository.MediaRepository.
func (m *MockMediaRepository) FindAll(ctx context.Context) ([]domain.MediaItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.shouldFailOn["FindAll"]; err != nil {
		return nil, err
	}
	items := []domain.MediaItem{}
	for _, item := range m.items {
		items = append(items, *item)
	}
	return items, nil
}

// Update implements repository.MediaRepository.
func (m *MockMediaRepository) Update(ctx context.Context, mediaID string, update domain.MediaUpdate) (*domain.MediaItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.shouldFailOn["Update"]; err != nil {
		return nil, err
	}
	item, ok := m.items[mediaID]
	if !ok {
		return nil, repository.NewNotFound("media", mediaID)
	}
	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.Type != nil {
		item.Type = *update.Type
	}
	if update.ReleaseYear != nil {
		item.ReleaseYear = *update.ReleaseYear
	}
	if update.Genre != nil {
		item.Genre = *update.Genre
	}
	if update.ThumbnailURL != nil {
		item.ThumbnailURL = *update.ThumbnailURL
	}
	copied := *item
	return &copied, nil
}

// Delete implements repository.MediaRepository. Like DynamoDB, deleting a
// missing key succeeds silently.
func (m *MockMediaRepository) Delete(ctx context.Context, mediaID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.shouldFailOn["Delete"]; err != nil {
		return err
	}
	delete(m.items, mediaID)
	return nil
}
