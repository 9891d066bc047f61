package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sales-assistant/internal/domain/entities"
	Irepository "sales-assistant/internal/domain/interfaces/repository"
)

var _ Irepository.EditRecordRepository = (*MongoRepository)(nil)

// MongoRepository stores edit records in one collection, ordered by
// created_at, with the same FIFO cap as the file store.
type MongoRepository struct {
	collection *mongo.Collection
	maxRecords int
}

func NewMongoRepository(db *mongo.Database, maxRecords int) *MongoRepository {
	if maxRecords <= 0 {
		maxRecords = Irepository.DefaultMaxEditRecords
	}
	return &MongoRepository{
		collection: db.Collection(Irepository.EmailEditsCollection),
		maxRecords: maxRecords,
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}},
	})
	return err
}

func (r *MongoRepository) Append(ctx context.Context, record entities.EditRecord) error {
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert edit record: %w", err)
	}
	return r.evict(ctx)
}

// evict deletes the oldest documents beyond the cap.
func (r *MongoRepository) evict(ctx context.Context) error {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("count edit records: %w", err)
	}
	excess := count - int64(r.maxRecords)
	if excess <= 0 {
		return nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(excess).
		SetProjection(bson.M{"_id": 1})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return fmt.Errorf("find oldest edit records: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return err
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	_, err = r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	return err
}

func (r *MongoRepository) FindRecent(ctx context.Context, limit int) ([]entities.EditRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []entities.EditRecord{}
	for cursor.Next(ctx) {
		var record entities.EditRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	// newest first from the query, callers expect oldest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.D{})
	return int(count), err
}
