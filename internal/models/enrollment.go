package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EnrollmentStatus string

const (
	StatusEnrolled  EnrollmentStatus = "Enrolled"
	StatusCompleted EnrollmentStatus = "Completed"
	StatusCancelled EnrollmentStatus = "Cancelled"
)

type EnrolledCourse struct {
	CourseID primitive.ObjectID `json:"courseId" bson:"course_id"`
	Price    float64            `json:"price" bson:"price"`
	Subtotal float64            `json:"subtotal" bson:"subtotal"`
}

type Enrollment struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"user_id"`
	EnrolledCourses []EnrolledCourse   `json:"enrolledCourses" bson:"enrolled_courses"`
	TotalPrice      float64            `json:"totalPrice" bson:"total_price"`
	EnrolledAt      time.Time          `json:"enrolledOn" bson:"enrolled_at"`
	Status          EnrollmentStatus   `json:"status" bson:"status"`
}
