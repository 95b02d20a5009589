package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Aishwarya-Deepak/FSD/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoContactRepository struct {
	collection *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) ContactRepository {
	return &mongoContactRepository{
		collection: db.Collection("contacts"),
	}
}

// SaveContact inserts the submission as-is. The collection is schemaless and
// no field presence is enforced here.
func (m *mongoContactRepository) SaveContact(ctx context.Context, submission *domain.ContactSubmission) error {
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}

	_, err := m.collection.InsertOne(ctx, submission)
	if err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}

	return nil
}
