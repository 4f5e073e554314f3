package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string             `json:"firstName" bson:"first_name"`
	LastName  string             `json:"lastName" bson:"last_name"`
	Email     string             `json:"email" bson:"email"`
	MobileNo  string             `json:"mobileNo" bson:"mobile_no"`
	Password  string             `json:"password,omitempty" bson:"password"`
	IsAdmin   bool               `json:"isAdmin" bson:"is_admin"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
}
