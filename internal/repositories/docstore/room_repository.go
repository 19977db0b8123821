package docstore

import (
	"context"

	"github.com/atlasferme/worker_housing_app/internal/core/domain"
	portsrepo "github.com/atlasferme/worker_housing_app/internal/core/ports/repositories"
	store "github.com/atlasferme/worker_housing_app/internal/platform/docstore"
)

type DocRoomRepository struct {
	BaseRepository
}

// newDocRoomRepository creates a new repository for room data.
func newDocRoomRepository(client store.Client) portsrepo.RoomRepositoryFacade {
	return &DocRoomRepository{
		BaseRepository: BaseRepository{Client: client},
	}
}

// Ensure DocRoomRepository implements portsrepo.RoomRepositoryFacade
var _ portsrepo.RoomRepositoryFacade = (*DocRoomRepository)(nil)

// DecodeRoom converts a raw room document into a domain room.
func DecodeRoom(doc store.Document) (domain.Room, error) {
	var room domain.Room
	if err := decodeInto(doc, &room); err != nil {
		return domain.Room{}, err
	}
	room.RoomID = doc.ID
	room.CreatedAt = doc.CreatedAt
	room.UpdatedAt = doc.UpdatedAt
	return room, nil
}

func (r *DocRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	doc, err := r.Client.Get(ctx, store.CollectionRooms, roomID)
	if err != nil {
		return nil, err
	}
	room, err := DecodeRoom(*doc)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *DocRoomRepository) listRooms(ctx context.Context, filter store.Filter) ([]domain.Room, error) {
	docs, err := r.Client.List(ctx, store.CollectionRooms, filter)
	if err != nil {
		return nil, err
	}
	rooms := make([]domain.Room, 0, len(docs))
	for _, doc := range docs {
		room, err := DecodeRoom(doc)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (r *DocRoomRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return r.listRooms(ctx, nil)
}

func (r *DocRoomRepository) ListRoomsBySiteID(ctx context.Context, siteID string) ([]domain.Room, error) {
	return r.listRooms(ctx, store.Filter{"siteId": siteID})
}

func (r *DocRoomRepository) SaveRoom(ctx context.Context, room domain.Room) (*domain.Room, error) {
	doc, err := r.Client.Create(ctx, store.CollectionRooms, room.RoomID, room)
	if err != nil {
		return nil, err
	}
	saved, err := DecodeRoom(*doc)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *DocRoomRepository) UpdateRoomFields(ctx context.Context, roomID string, fields map[string]any) error {
	return r.Client.Update(ctx, store.CollectionRooms, roomID, fields)
}

func (r *DocRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	return r.Client.Delete(ctx, store.CollectionRooms, roomID)
}
