package handlers

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kri4n/CourseBooking-API/internal/models"
)

// In-memory store fakes mirroring the mongo store contracts:
// Find methods return (nil, nil) when nothing matches.

type fakeCourseStore struct {
	courses []models.Course
	err     error
}

func (f *fakeCourseStore) Insert(_ context.Context, course *models.Course) error {
	if f.err != nil {
		return f.err
	}
	f.courses = append(f.courses, *course)
	return nil
}

func (f *fakeCourseStore) FindByName(_ context.Context, name string) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.courses {
		if f.courses[i].Name == name {
			c := f.courses[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) FindAll(_ context.Context) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Course(nil), f.courses...), nil
}

func (f *fakeCourseStore) FindActive(_ context.Context) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var active []models.Course
	for _, c := range f.courses {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (f *fakeCourseStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.courses {
		if f.courses[i].ID == id {
			c := f.courses[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) Update(_ context.Context, id primitive.ObjectID, name, description string, price float64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i := range f.courses {
		if f.courses[i].ID == id {
			f.courses[i].Name = name
			f.courses[i].Description = description
			f.courses[i].Price = price
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) SetActive(_ context.Context, id primitive.ObjectID, active bool) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.courses {
		if f.courses[i].ID == id {
			before := f.courses[i]
			f.courses[i].IsActive = active
			return &before, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) SearchByName(_ context.Context, name string) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matches []models.Course
	for _, c := range f.courses {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

func (f *fakeCourseStore) SearchByPriceRange(_ context.Context, minPrice, maxPrice float64) ([]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matches []models.Course
	for _, c := range f.courses {
		if c.Price >= minPrice && c.Price <= maxPrice {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

type fakeUserStore struct {
	users []models.User
	err   error
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id primitive.ObjectID, firstName, lastName, mobileNo string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].FirstName = firstName
			f.users[i].LastName = lastName
			f.users[i].MobileNo = mobileNo
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id primitive.ObjectID, passwordHash string) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Password = passwordHash
		}
	}
	return nil
}

func (f *fakeUserStore) PromoteToAdmin(_ context.Context, id primitive.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].IsAdmin = true
			return true, nil
		}
	}
	return false, nil
}

type fakeEnrollmentStore struct {
	enrollments []models.Enrollment
	err         error
}

func (f *fakeEnrollmentStore) Insert(_ context.Context, enrollment *models.Enrollment) error {
	if f.err != nil {
		return f.err
	}
	f.enrollments = append(f.enrollments, *enrollment)
	return nil
}

func (f *fakeEnrollmentStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var matches []models.Enrollment
	for _, e := range f.enrollments {
		if e.UserID == userID {
			matches = append(matches, e)
		}
	}
	return matches, nil
}
