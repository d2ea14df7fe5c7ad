// Package mongodb implements the persistence layer over MongoDB collections.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection        = "users"
	studentsCollection     = "students"
	companiesCollection    = "companies"
	adminsCollection       = "admins"
	jobsCollection         = "jobs"
	applicationsCollection = "appliedjobs"
)

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the business rules rely on: a unique
// email per credential collection, a unique (studentId, jobId) pair per
// application, and a companyId lookup index for the cascade delete.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	emailUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, name := range []string{usersCollection, studentsCollection, companiesCollection, adminsCollection} {
		if _, err := db.Collection(name).Indexes().CreateOne(ctx, emailUnique); err != nil {
			return fmt.Errorf("failed to create email index on %s: %w", name, err)
		}
	}

	applicationUnique := mongo.IndexModel{
		Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "jobId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection(applicationsCollection).Indexes().CreateOne(ctx, applicationUnique); err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	jobCompany := mongo.IndexModel{
		Keys: bson.D{{Key: "companyId", Value: 1}},
	}
	if _, err := db.Collection(jobsCollection).Indexes().CreateOne(ctx, jobCompany); err != nil {
		return fmt.Errorf("failed to create job company index: %w", err)
	}

	return nil
}
