package db

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var dbName = "fitness"

// Connect opens the Mongo client, verifies the connection and makes sure
// the indexes the application relies on exist.
func Connect(uri, name string) (*mongo.Client, error) {
	dbName = name

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	if err := ensureIndexes(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// Close disconnects the client. Called once, on shutdown.
func Close(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Println("Mongo disconnect error:", err)
	}
}

func Users(client *mongo.Client) *mongo.Collection    { return collection(client, "users") }
func Workouts(client *mongo.Client) *mongo.Collection { return collection(client, "workouts") }
func Goals(client *mongo.Client) *mongo.Collection    { return collection(client, "goals") }
func Meals(client *mongo.Client) *mongo.Collection    { return collection(client, "meals") }
func Sessions(client *mongo.Client) *mongo.Collection { return collection(client, "sessions") }

func collection(client *mongo.Client, name string) *mongo.Collection {
	return client.Database(dbName).Collection(name)
}

func ensureIndexes(ctx context.Context, client *mongo.Client) error {
	_, err := Users(client).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = Workouts(client).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		return err
	}

	_, err = Goals(client).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "isCompleted", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = Meals(client).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "date", Value: -1}},
	})
	return err
}
