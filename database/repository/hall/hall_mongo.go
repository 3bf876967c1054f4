package hallRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"seminarhall/database"
	"seminarhall/models"
)

// HallRepository is the hall directory collaborator. GetByKey returns
// (nil, nil) when no hall matches.
type HallRepository interface {
	ListAll() ([]models.Hall, error)
	GetByKey(key string) (*models.Hall, error)
	Create(h *models.Hall) error
	Update(h *models.Hall) error
	Delete(id string) error
}

// MongoHallRepo implements HallRepository using MongoDB.
type MongoHallRepo struct {
	coll *mongo.Collection
}

// NewMongoHallRepo constructs a new instance of MongoHallRepo.
func NewMongoHallRepo() HallRepository {
	return &MongoHallRepo{
		coll: database.DB().Collection("halls"),
	}
}

func (repo *MongoHallRepo) ListAll() ([]models.Hall, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching halls: %w", err)
	}
	defer cursor.Close(ctx)

	var halls []models.Hall
	for cursor.Next(ctx) {
		var h models.Hall
		if err := cursor.Decode(&h); err != nil {
			return nil, fmt.Errorf("error decoding hall: %w", err)
		}
		halls = append(halls, h)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error fetching halls: %w", err)
	}
	return halls, nil
}

// GetByKey resolves a hall by id or display name; records reference halls by
// either form. A missing hall is (nil, nil), not an error.
func (repo *MongoHallRepo) GetByKey(key string) (*models.Hall, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{{"id": key}, {"name": key}}}
	var h models.Hall
	if err := repo.coll.FindOne(ctx, filter).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching hall %q: %w", key, err)
	}
	return &h, nil
}

func (repo *MongoHallRepo) Create(h *models.Hall) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, h); err != nil {
		return fmt.Errorf("error creating hall: %w", err)
	}
	return nil
}

func (repo *MongoHallRepo) Update(h *models.Hall) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.ReplaceOne(ctx, bson.M{"id": h.ID}, h)
	if err != nil {
		return fmt.Errorf("error updating hall %s: %w", h.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("hall %s not found", h.ID)
	}
	return nil
}

func (repo *MongoHallRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting hall %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("hall %s not found", id)
	}
	return nil
}
