package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Kri4n/CourseBooking-API/internal/models"
)

type mongoCourseStore struct {
	collection *mongo.Collection
}

func NewCourseStore(db *mongo.Database) CourseStore {
	return &mongoCourseStore{collection: db.Collection("courses")}
}

func (s *mongoCourseStore) Insert(ctx context.Context, course *models.Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, course)
	return err
}

func (s *mongoCourseStore) FindByName(ctx context.Context, name string) (*models.Course, error) {
	var course models.Course
	err := s.collection.FindOne(ctx, bson.M{"name": name}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (s *mongoCourseStore) FindAll(ctx context.Context) ([]models.Course, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoCourseStore) FindActive(ctx context.Context) ([]models.Course, error) {
	return s.find(ctx, bson.M{"is_active": true})
}

func (s *mongoCourseStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (s *mongoCourseStore) Update(ctx context.Context, id primitive.ObjectID, name, description string, price float64) (bool, error) {
	update := bson.M{
		"$set": bson.M{
			"name":        name,
			"description": description,
			"price":       price,
		},
	}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// SetActive flips the is_active flag and returns the document as it was
// before the update, so callers can detect a no-op archive/activate.
func (s *mongoCourseStore) SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Course, error) {
	var course models.Course
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_active": active}}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (s *mongoCourseStore) SearchByName(ctx context.Context, name string) ([]models.Course, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: name, Options: "i"}}
	return s.find(ctx, filter)
}

func (s *mongoCourseStore) SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Course, error) {
	filter := bson.M{"price": bson.M{"$gte": minPrice, "$lte": maxPrice}}
	return s.find(ctx, filter)
}

func (s *mongoCourseStore) find(ctx context.Context, filter bson.M) ([]models.Course, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
