package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/Inteligencia-Artificial-UTalca/unidad-4-rule-based-pcg-teamrc/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrMapNotFound is returned when no map exists under the requested ID.
var ErrMapNotFound = errors.New("map not found")

// MapRepo handles the persistence of generated maps.
type MapRepo struct {
	collection *mongo.Collection
}

// NewMapRepo creates a new MapRepo with the given MongoDB client, database
// name, and collection name.
func NewMapRepo(client *mongo.Client, dbName, collectionName string) *MapRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MapRepo{
		collection: collection,
	}
}

// Save inserts or updates a map record.
// If the record already exists, it updates the stored copy.
// If it does not exist, it adds a new record.
func (r *MapRepo) Save(record *dmn.MapRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": record.ID}
	update := bson.M{
		"$set": bson.M{
			"name":      record.Name,
			"params":    record.Params,
			"cells":     record.Cells,
			"agentRow":  record.AgentRow,
			"agentCol":  record.AgentCol,
			"createdAt": record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}

	return nil
}

// ByID retrieves a map by its ID.
// Returns ErrMapNotFound if the map does not exist.
func (r *MapRepo) ByID(id uuid.UUID) (*dmn.MapRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var record dmn.MapRecord
	if err := r.collection.FindOne(ctx, filter).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMapNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &record, nil
}

// Latest retrieves up to limit maps, newest first.
func (r *MapRepo) Latest(limit int64) ([]*dmn.MapRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	var records []*dmn.MapRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return records, nil
}

// Delete removes a map by its ID.
// Returns ErrMapNotFound if no map was stored under it.
func (r *MapRepo) Delete(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if result.DeletedCount == 0 {
		return ErrMapNotFound
	}
	return nil
}
