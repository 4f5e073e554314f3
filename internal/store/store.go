package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kri4n/CourseBooking-API/internal/models"
)

// CourseStore defines operations for course records.
// Find methods return (nil, nil) when no record matches.
type CourseStore interface {
	Insert(ctx context.Context, course *models.Course) error
	FindByName(ctx context.Context, name string) (*models.Course, error)
	FindAll(ctx context.Context) ([]models.Course, error)
	FindActive(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Course, error)
	Update(ctx context.Context, id primitive.ObjectID, name, description string, price float64) (bool, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) (*models.Course, error)
	SearchByName(ctx context.Context, name string) ([]models.Course, error)
	SearchByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Course, error)
}

// UserStore defines operations for user records
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, firstName, lastName, mobileNo string) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// EnrollmentStore defines operations for enrollment records
type EnrollmentStore interface {
	Insert(ctx context.Context, enrollment *models.Enrollment) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Enrollment, error)
}
