package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kri4n/CourseBooking-API/internal/auth"
	"github.com/Kri4n/CourseBooking-API/internal/middleware"
	"github.com/Kri4n/CourseBooking-API/internal/models"
	"github.com/Kri4n/CourseBooking-API/internal/store"
	"github.com/Kri4n/CourseBooking-API/internal/utils"
)

type UserHandler struct {
	users       store.UserStore
	enrollments store.EnrollmentStore
	auth        *auth.Auth
	mailer      *utils.Mailer
	timeout     time.Duration
}

func NewUserHandler(users store.UserStore, enrollments store.EnrollmentStore, a *auth.Auth, mailer *utils.Mailer) *UserHandler {
	return &UserHandler{
		users:       users,
		enrollments: enrollments,
		auth:        a,
		mailer:      mailer,
		timeout:     5 * time.Second,
	}
}

// Register handles user registration
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var newUser models.User
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Validation order matters: each check short-circuits before the next
	if !strings.Contains(newUser.Email, "@") {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	if len(newUser.MobileNo) != 11 {
		utils.WriteMessage(w, http.StatusBadRequest, "Mobile number is invalid")
		return
	}
	if len(newUser.Password) < 8 {
		utils.WriteMessage(w, http.StatusBadRequest, "Password must be atleast 8 characters long")
		return
	}

	hashedPassword, err := auth.HashPassword(newUser.Password)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	newUser.Password = hashedPassword
	newUser.ID = primitive.NewObjectID()
	newUser.IsAdmin = false
	newUser.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.users.Insert(ctx, &newUser); err != nil {
		utils.WriteServerError(w, err)
		return
	}

	if h.mailer != nil {
		go h.sendWelcomeEmail(newUser.Email, newUser.FirstName)
	}

	newUser.Password = ""
	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    newUser,
	})
}

// Login handles user authentication and token issuance
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !strings.Contains(credentials.Email, "@") {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, credentials.Email)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if user == nil {
		utils.WriteMessage(w, http.StatusNotFound, "No email found")
		return
	}

	if !auth.CheckPasswordHash(credentials.Password, user.Password) {
		utils.WriteMessage(w, http.StatusUnauthorized, "Incorrect email or password")
		return
	}

	token, err := h.auth.GenerateToken(user)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User logged in successfully",
		"access":  token,
	})
}

// CheckEmail reports whether an email is already registered
func (h *UserHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !strings.Contains(req.Email, "@") {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if user != nil {
		utils.WriteMessage(w, http.StatusConflict, "Duplicate email found")
		return
	}
	utils.WriteMessage(w, http.StatusNotFound, "No duplicate email found")
}

// GetProfile returns the caller's user record with the password stripped
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Authentication token required")
		return
	}

	objID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.WriteMessage(w, http.StatusForbidden, "invalid signature")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, err := h.users.FindByID(ctx, objID)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if user == nil {
		utils.WriteMessage(w, http.StatusForbidden, "invalid signature")
		return
	}

	user.Password = ""
	utils.WriteJSON(w, http.StatusOK, user)
}

// Enroll creates an enrollment record for the caller
func (h *UserHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Authentication token required")
		return
	}
	if claims.IsAdmin {
		utils.WriteMessage(w, http.StatusForbidden, "Admin is forbidden")
		return
	}

	var req struct {
		EnrolledCourses []models.EnrolledCourse `json:"enrolledCourses"`
		TotalPrice      float64                 `json:"totalPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	objID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	newEnrollment := models.Enrollment{
		ID:              primitive.NewObjectID(),
		UserID:          objID,
		EnrolledCourses: req.EnrolledCourses,
		TotalPrice:      req.TotalPrice,
		EnrolledAt:      time.Now(),
		Status:          models.StatusEnrolled,
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.enrollments.Insert(ctx, &newEnrollment); err != nil {
		utils.WriteServerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Enrolled successfully",
	})
}

// GetEnrollments lists the caller's enrollments
func (h *UserHandler) GetEnrollments(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Authentication token required")
		return
	}

	objID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	enrollments, err := h.enrollments.FindByUser(ctx, objID)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if len(enrollments) == 0 {
		utils.WriteMessage(w, http.StatusNotFound, "No enrolled courses")
		return
	}

	utils.WriteJSON(w, http.StatusOK, enrollments)
}

// ResetPassword replaces the caller's password hash
func (h *UserHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Authentication token required")
		return
	}

	var req struct {
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	objID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	hashedPassword, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.users.UpdatePassword(ctx, objID, hashedPassword); err != nil {
		utils.WriteServerError(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Password reset successfully")
}

// UpdateProfile overwrites the caller's profile fields with the request body.
// Fields absent from the body are written as empty values.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteMessage(w, http.StatusUnauthorized, "Authentication token required")
		return
	}

	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		MobileNo  string `json:"mobileNo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	objID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user, err := h.users.UpdateProfile(ctx, objID, req.FirstName, req.LastName, req.MobileNo)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if user == nil {
		utils.WriteMessage(w, http.StatusNotFound, "User not found")
		return
	}

	user.Password = ""
	utils.WriteJSON(w, http.StatusOK, user)
}

// UpdateAsAdmin promotes the target user to admin
func (h *UserHandler) UpdateAsAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	objID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	found, err := h.users.PromoteToAdmin(ctx, objID)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}
	if !found {
		utils.WriteMessage(w, http.StatusNotFound, "User not found")
		return
	}

	utils.WriteMessage(w, http.StatusOK, "User updated as admin successfully")
}

func (h *UserHandler) sendWelcomeEmail(to, firstName string) {
	body := fmt.Sprintf(`
	<html>
	<body>
		<p>Hi %s,</p>
		<p>Welcome to Course Booking! Your account has been created successfully.</p>
		<p>You can now browse our active courses and enroll anytime.</p>
	</body>
	</html>`, firstName)

	// Mail failures are logged by the mailer; registration already succeeded
	_ = h.mailer.Send(to, "Welcome to Course Booking", body)
}
