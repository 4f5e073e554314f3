package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kri4n/CourseBooking-API/internal/models"
	"github.com/Kri4n/CourseBooking-API/internal/store"
	"github.com/Kri4n/CourseBooking-API/internal/utils"
)

type CourseHandler struct {
	courses store.CourseStore
	timeout time.Duration
}

func NewCourseHandler(courses store.CourseStore) *CourseHandler {
	return &CourseHandler{
		courses: courses,
		timeout: 5 * time.Second,
	}
}

// AddCourse handles creating a new course
func (h *CourseHandler) AddCourse(w http.ResponseWriter, r *http.Request) {
	var newCourse models.Course
	if err := json.NewDecoder(r.Body).Decode(&newCourse); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if newCourse.Name == "" {
		utils.WriteMessage(w, http.StatusBadRequest, "Course name is required")
		return
	}
	if newCourse.Price < 0 {
		utils.WriteMessage(w, http.StatusBadRequest, "Course price must not be negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	// Name uniqueness is a business check, not a database constraint:
	// concurrent submissions with the same name can both pass it.
	existing, err := h.courses.FindByName(ctx, newCourse.Name)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if existing != nil {
		utils.WriteMessage(w, http.StatusConflict, "Course already exists")
		return
	}

	newCourse.ID = primitive.NewObjectID()
	newCourse.IsActive = true
	newCourse.CreatedAt = time.Now()

	if err := h.courses.Insert(ctx, &newCourse); err != nil {
		utils.WriteServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Course added successfully",
		"result":  newCourse,
	})
}

// GetAllCourses retrieves all courses, active or not
func (h *CourseHandler) GetAllCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	courses, err := h.courses.FindAll(ctx)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if len(courses) == 0 {
		utils.WriteMessage(w, http.StatusNotFound, "No courses")
		return
	}

	utils.WriteJSON(w, http.StatusOK, courses)
}

// GetActiveCourses retrieves all active courses
func (h *CourseHandler) GetActiveCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	courses, err := h.courses.FindActive(ctx)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if len(courses) == 0 {
		utils.WriteMessage(w, http.StatusOK, "No active courses found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, courses)
}

// GetCourse retrieves a specific course by id
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	course, err := h.courses.FindByID(ctx, objID)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if course == nil {
		utils.WriteMessage(w, http.StatusNotFound, "Course not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, course)
}

// UpdateCourse updates the name, description and price of a course
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["courseId"])
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	var updated models.Course
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	found, err := h.courses.Update(ctx, objID, updated.Name, updated.Description, updated.Price)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if !found {
		utils.WriteMessage(w, http.StatusNotFound, "Course not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Course updated successfully",
	})
}

// ArchiveCourse marks a course as inactive
func (h *CourseHandler) ArchiveCourse(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "Course already archived", "Course archived successfully")
}

// ActivateCourse marks a course as active
func (h *CourseHandler) ActivateCourse(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "Course already activated", "Course activated successfully")
}

func (h *CourseHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, alreadyMsg, successMsg string) {
	objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["courseId"])
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid course ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	// SetActive returns the pre-update document, so an unchanged flag means
	// the course was already in the requested state.
	course, err := h.courses.SetActive(ctx, objID, active)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if course == nil {
		utils.WriteMessage(w, http.StatusNotFound, "Course not found")
		return
	}

	if course.IsActive == active {
		utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"message": alreadyMsg,
			"course":  course,
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": successMsg,
	})
}

// SearchCoursesByName searches courses by a case-insensitive name substring
func (h *CourseHandler) SearchCoursesByName(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CourseName string `json:"courseName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	courses, err := h.courses.SearchByName(ctx, req.CourseName)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}

	utils.WriteJSON(w, http.StatusOK, courses)
}

// SearchCoursesByPriceRange searches courses priced within [minPrice, maxPrice]
func (h *CourseHandler) SearchCoursesByPriceRange(w http.ResponseWriter, r *http.Request) {
	var req struct {
		MinPrice float64 `json:"minPrice"`
		MaxPrice float64 `json:"maxPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	courses, err := h.courses.SearchByPriceRange(ctx, req.MinPrice, req.MaxPrice)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}

	utils.WriteJSON(w, http.StatusOK, courses)
}
