package database

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ConnectMongoDB runs once
	connectErr error
)

// SessionCollection holds the per-visitor quiz records when STORE_DRIVER=mongo.
const SessionCollection = "QuizSessions"

// ConnectMongoDB connects once; later calls return the first result.
func ConnectMongoDB(mongoURI string) error {
	if mongoURI == "" {
		return errors.New("MONGO_URI is not set")
	}

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if connectErr != nil {
			log.Println("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(ctx, readpref.Primary())
		if connectErr != nil {
			log.Println("❌ MongoDB ping failed:", connectErr)
			return
		}
		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection of the connected client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
