package banlist

import (
	"context"
	"fmt"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/database"
	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "banned_users"

// queryTimeout bounds each database round trip
const queryTimeout = 10 * time.Second

// MongoRepository is the database-backed ban store, used when a MongoDB
// URL is configured. The _id index enforces the one-record-per-user
// invariant server side; ban order is preserved via the banned_at field.
type MongoRepository struct {
	db  *database.Database
	now func() time.Time
}

// NewMongoRepository creates a ban store on the banned_users collection
func NewMongoRepository(db *database.Database) *MongoRepository {
	return &MongoRepository{db: db, now: time.Now}
}

func (r *MongoRepository) collection() *mongo.Collection {
	return r.db.GetCollection(mongoCollection)
}

// List returns all records in ban order. Database faults degrade to empty.
func (r *MongoRepository) List(ctx context.Context) []BanRecord {
	coll := r.collection()
	if coll == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "banned_at", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error(fmt.Sprintf("Error consultando la lista de baneos: %v", err), "BanList")
		return nil
	}
	defer cursor.Close(ctx)

	var records []BanRecord
	if err := cursor.All(ctx, &records); err != nil {
		logger.Error(fmt.Sprintf("Error decodificando la lista de baneos: %v", err), "BanList")
		return nil
	}
	return records
}

// Find returns the record for userID, if any
func (r *MongoRepository) Find(ctx context.Context, userID string) (*BanRecord, bool) {
	coll := r.collection()
	if coll == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var rec BanRecord
	err := coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&rec)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			logger.Error(fmt.Sprintf("Error buscando baneo de %s: %v", userID, err), "BanList")
		}
		return nil, false
	}
	return &rec, true
}

// Add inserts a new record; the _id constraint rejects duplicates
func (r *MongoRepository) Add(ctx context.Context, userID, username, reason, bannedBy string) error {
	coll := r.collection()
	if coll == nil {
		return fmt.Errorf("ban store unavailable")
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rec := BanRecord{
		UserID:   userID,
		Username: username,
		Reason:   reason,
		BannedBy: bannedBy,
		BannedAt: r.now(),
	}

	if _, err := coll.InsertOne(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrAlreadyBanned
		}
		logger.Error(fmt.Sprintf("Error guardando el baneo de %s: %v", userID, err), "BanList")
		return err
	}

	logger.Info(fmt.Sprintf("Usuario %s (%s) baneado por %s. Razón: %s", username, userID, bannedBy, reason), "BanList")
	return nil
}

// Remove deletes the record for userID
func (r *MongoRepository) Remove(ctx context.Context, userID, actingAdmin string) error {
	coll := r.collection()
	if coll == nil {
		return fmt.Errorf("ban store unavailable")
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		logger.Error(fmt.Sprintf("Error eliminando el baneo de %s: %v", userID, err), "BanList")
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotBanned
	}

	logger.Info(fmt.Sprintf("Usuario %s desbaneado por %s", userID, actingAdmin), "BanList")
	return nil
}

// Stats returns the total count and the most recent records
func (r *MongoRepository) Stats(ctx context.Context) Stats {
	return statsOf(r.List(ctx))
}
