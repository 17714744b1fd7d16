package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
	ExpiresAt time.Time `bson:"expiresAt"`
}

// MongoStore keeps one document per key. Expired documents are removed by a
// TTL index on expiresAt and ignored on read until the index sweeps them.
type MongoStore struct {
	coll *mongo.Collection
	ttl  time.Duration
	now  func() time.Time
}

func NewMongoStore(coll *mongo.Collection, ttl time.Duration) *MongoStore {
	return &MongoStore{coll: coll, ttl: ttl, now: time.Now}
}

// EnsureIndexes creates the TTL index. Safe to call on every start.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := m.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("create ttl index: %w", err)
	}
	log.Println("✅ Mongo store TTL index ready on", m.coll.Name())
	return nil
}

func (m *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("mongo get %s: %w", key, err)
	}
	if !doc.ExpiresAt.IsZero() && m.now().After(doc.ExpiresAt) {
		return "", false, nil
	}
	return doc.Value, true, nil
}

func (m *MongoStore) Set(ctx context.Context, key, value string) error {
	now := m.now()
	update := bson.M{"$set": bson.M{
		"value":     value,
		"updatedAt": now,
		"expiresAt": now.Add(m.ttl),
	}}
	_, err := m.coll.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo set %s: %w", key, err)
	}
	return nil
}

func (m *MongoStore) Remove(ctx context.Context, key string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo remove %s: %w", key, err)
	}
	return nil
}
