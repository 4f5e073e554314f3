package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Kri4n/CourseBooking-API/internal/models"
)

type mongoEnrollmentStore struct {
	collection *mongo.Collection
}

func NewEnrollmentStore(db *mongo.Database) EnrollmentStore {
	return &mongoEnrollmentStore{collection: db.Collection("enrollments")}
}

func (s *mongoEnrollmentStore) Insert(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID.IsZero() {
		enrollment.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, enrollment)
	return err
}

func (s *mongoEnrollmentStore) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Enrollment, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var enrollments []models.Enrollment
	if err = cursor.All(ctx, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}
