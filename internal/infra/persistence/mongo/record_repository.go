package mongo

import (
	"context"

	"stockroom/internal/domain/entity"
	"stockroom/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	itemsCollection      = "items"
	outOfStockCollection = "outofstock"
)

// recordRepository implements repository.RecordRepository over one collection.
type recordRepository[T any] struct {
	coll *mongo.Collection
}

// NewItemRepository is the constructor for the items collection repository.
func NewItemRepository(db *mongo.Database) repository.ItemRepository {
	return &recordRepository[entity.Item]{coll: db.Collection(itemsCollection)}
}

// NewOutOfStockRepository is the constructor for the outofstock collection repository.
func NewOutOfStockRepository(db *mongo.Database) repository.OutOfStockRepository {
	return &recordRepository[entity.OutOfStockRequest]{coll: db.Collection(outOfStockCollection)}
}

// FindAll retrieves every record in the collection.
func (repo *recordRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query collection")
	}
	defer cursor.Close(ctx)

	records := make([]T, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode records")
	}

	return records, nil
}

// FindByID retrieves the record matching the given id.
func (repo *recordRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidRecordID
	}

	var record T
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find record by id")
	}

	return &record, nil
}

// Insert persists a new record and returns the database-assigned id.
func (repo *recordRepository[T]) Insert(ctx context.Context, record *T) (string, error) {
	doc, err := marshalWithoutID(record)
	if err != nil {
		return "", err
	}

	result, err := repo.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", errors.Wrap(err, "failed to insert record")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return oid.Hex(), nil
}

// Replace fully replaces the record with the given id.
func (repo *recordRepository[T]) Replace(ctx context.Context, id string, record *T) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrInvalidRecordID
	}

	doc, err := marshalWithoutID(record)
	if err != nil {
		return err
	}

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return errors.Wrap(err, "failed to replace record")
	}

	// MatchedCount rather than ModifiedCount: replacing a record with an
	// identical payload is a successful no-op, not a missing id.
	if result.MatchedCount == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes the record with the given id.
func (repo *recordRepository[T]) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrInvalidRecordID
	}

	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(err, "failed to delete record")
	}

	if result.DeletedCount == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// marshalWithoutID converts a record into a document with any client-supplied
// _id stripped, so identity stays database-assigned and immutable.
func marshalWithoutID(record any) (bson.D, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal record")
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal record document")
	}

	filtered := make(bson.D, 0, len(doc))
	for _, elem := range doc {
		if elem.Key == "_id" {
			continue
		}
		filtered = append(filtered, elem)
	}

	return filtered, nil
}
