package docstore

import (
	"context"
	"fmt"

	"github.com/atlasferme/worker_housing_app/internal/apperrors"
	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	store "github.com/atlasferme/worker_housing_app/internal/platform/docstore"
)

type DocUserRepository struct {
	BaseRepository
}

// newDocUserRepository creates a new repository for user data.
func newDocUserRepository(client store.Client) portsrepo.UserRepositoryFacade {
	return &DocUserRepository{
		BaseRepository: BaseRepository{Client: client},
	}
}

// Ensure DocUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*DocUserRepository)(nil)

// DecodeUser converts a raw user document into a domain user.
func DecodeUser(doc store.Document) (domain.User, error) {
	var user domain.User
	if err := decodeInto(doc, &user); err != nil {
		return domain.User{}, err
	}
	user.UserID = doc.ID
	user.CreatedAt = doc.CreatedAt
	user.UpdatedAt = doc.UpdatedAt
	return user, nil
}

func (r *DocUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	doc, err := r.Client.Get(ctx, store.CollectionUsers, userID)
	if err != nil {
		return nil, err
	}
	user, err := DecodeUser(*doc)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *DocUserRepository) findOne(ctx context.Context, filter store.Filter, what string) (*domain.User, error) {
	docs, err := r.Client.List(ctx, store.CollectionUsers, filter)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user with %s not found", what))
	}
	user, err := DecodeUser(docs[0])
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *DocUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, store.Filter{"email": email}, "email "+email)
}

func (r *DocUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	filter := store.Filter{"authProvider": string(provider), "providerUserId": providerUserID}
	return r.findOne(ctx, filter, "provider id "+providerUserID)
}

func (r *DocUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	docs, err := r.Client.List(ctx, store.CollectionUsers, nil)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		user, err := DecodeUser(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *DocUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	doc, err := r.Client.Create(ctx, store.CollectionUsers, user.UserID, user)
	if err != nil {
		return nil, err
	}
	saved, err := DecodeUser(*doc)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *DocUserRepository) UpdateUserFields(ctx context.Context, userID string, fields map[string]any) error {
	return r.Client.Update(ctx, store.CollectionUsers, userID, fields)
}

func (r *DocUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return r.Client.Delete(ctx, store.CollectionUsers, userID)
}
