package seminarRepo

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

// MongoSeminarRepo implements SeminarRepository using MongoDB.
type MongoSeminarRepo struct {
	coll *mongo.Collection
}

// NewMongoSeminarRepo constructs a new instance of MongoSeminarRepo.
func NewMongoSeminarRepo() SeminarRepository {
	return &MongoSeminarRepo{
		coll: database.DB().Collection("seminars"),
	}
}

func (repo *MongoSeminarRepo) ListAll() ([]models.Seminar, error) {
	return repo.list(bson.M{})
}

func (repo *MongoSeminarRepo) ListByStatus(status string) ([]models.Seminar, error) {
	return repo.list(bson.M{"status": status})
}

func (repo *MongoSeminarRepo) list(filter bson.M) ([]models.Seminar, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching seminars: %w", err)
	}
	defer cursor.Close(ctx)

	var seminars []models.Seminar
	for cursor.Next(ctx) {
		var s models.Seminar
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding seminar: %w", err)
		}
		seminars = append(seminars, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error fetching seminars: %w", err)
	}
	return seminars, nil
}

func (repo *MongoSeminarRepo) GetByID(id string) (*models.Seminar, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var s models.Seminar
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching seminar with id %s: %w", id, err)
	}
	return &s, nil
}

func (repo *MongoSeminarRepo) Create(s *models.Seminar) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("error creating seminar: %w", err)
	}
	return nil
}

func (repo *MongoSeminarRepo) UpdateStatus(id, status, remarks string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status}}
	if remarks != "" {
		update = bson.M{"$set": bson.M{"status": status, "remarks": remarks}}
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating seminar %s status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("seminar %s not found", id)
	}
	return nil
}

func (repo *MongoSeminarRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting seminar %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("seminar %s not found", id)
	}
	return nil
}
