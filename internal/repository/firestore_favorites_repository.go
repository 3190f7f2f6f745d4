package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
)

// FirestoreFavoritesRepository stores each user's bookmarks under
// users/{userID}/favorites. The (type, key) uniqueness invariant is enforced
// here: Add refuses a second record with the same key.
type FirestoreFavoritesRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoritesRepository(client *firestore.Client) repository.FavoritesRepository {
	return &FirestoreFavoritesRepository{client: client}
}

func (r *FirestoreFavoritesRepository) collection(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("favorites")
}

// keyField names the field a favorite type is keyed by.
func keyField(favType string) string {
	if favType == model.FavoriteTypeMovie {
		return "movie_id"
	}
	return "external_id"
}

func (r *FirestoreFavoritesRepository) Exists(ctx context.Context, userID, favType, key string) (bool, error) {
	iter := r.collection(userID).
		Where("type", "==", favType).
		Where(keyField(favType), "==", key).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking favorite (%s, %s) for user %s: %w", favType, key, userID, err)
	}
	return true, nil
}

func (r *FirestoreFavoritesRepository) Add(ctx context.Context, userID string, record *model.FavoriteRecord) (*model.FavoriteRecord, error) {
	if !model.ValidFavoriteType(record.Type) {
		return nil, fmt.Errorf("invalid favorite type %q", record.Type)
	}

	exists, err := r.Exists(ctx, userID, record.Type, record.Key())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrFavoriteConflict
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now()

	if _, err := r.collection(userID).Doc(record.ID).Set(ctx, record); err != nil {
		return nil, fmt.Errorf("saving favorite (%s, %s) for user %s: %w", record.Type, record.Key(), userID, err)
	}

	return record, nil
}

func (r *FirestoreFavoritesRepository) Remove(ctx context.Context, userID, favType, key string) error {
	iter := r.collection(userID).
		Where("type", "==", favType).
		Where(keyField(favType), "==", key).
		Documents(ctx)
	defer iter.Stop()

	removed := false
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("finding favorite (%s, %s) for user %s: %w", favType, key, userID, err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return fmt.Errorf("deleting favorite (%s, %s) for user %s: %w", favType, key, userID, err)
		}
		removed = true
	}

	if !removed {
		return model.ErrFavoriteNotFound
	}
	return nil
}

func (r *FirestoreFavoritesRepository) ListByUser(ctx context.Context, userID string) ([]*model.FavoriteRecord, error) {
	iter := r.collection(userID).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var favorites []*model.FavoriteRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing favorites for user %s: %w", userID, err)
		}

		var record model.FavoriteRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("decoding favorite %s: %w", doc.Ref.ID, err)
		}
		favorites = append(favorites, &record)
	}

	return favorites, nil
}

func (r *FirestoreFavoritesRepository) ListRouteExternalIDs(ctx context.Context, userID string) ([]string, error) {
	iter := r.collection(userID).
		Where("type", "==", model.FavoriteTypeRoute).
		Documents(ctx)
	defer iter.Stop()

	var ids []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing route favorites for user %s: %w", userID, err)
		}

		var record model.FavoriteRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("decoding favorite %s: %w", doc.Ref.ID, err)
		}
		if record.ExternalID != "" {
			ids = append(ids, record.ExternalID)
		}
	}

	return ids, nil
}
