package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Kri4n/CourseBooking-API/internal/auth"
	"github.com/Kri4n/CourseBooking-API/internal/config"
	"github.com/Kri4n/CourseBooking-API/internal/handlers"
	"github.com/Kri4n/CourseBooking-API/internal/middleware"
	"github.com/Kri4n/CourseBooking-API/internal/oauth"
	"github.com/Kri4n/CourseBooking-API/internal/store"
	"github.com/Kri4n/CourseBooking-API/internal/utils"
)

func SetupRouter(client *mongo.Client, cfg config.Config) *mux.Router {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	db := client.Database(cfg.DatabaseName)
	courses := store.NewCourseStore(db)
	users := store.NewUserStore(db)
	enrollments := store.NewEnrollmentStore(db)

	tokens := auth.New(cfg.JWTSecret, cfg.TokenTTL)
	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	courseHandler := handlers.NewCourseHandler(courses)
	userHandler := handlers.NewUserHandler(users, enrollments, tokens, mailer)
	google := oauth.NewGoogleAuth(cfg, users)

	verify := middleware.Verify(tokens)
	authed := func(h http.HandlerFunc) http.Handler {
		return verify(h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return verify(middleware.VerifyAdmin(h))
	}

	// Course routes
	router.Handle("/courses", adminOnly(courseHandler.AddCourse)).Methods("POST")
	router.Handle("/courses/all", adminOnly(courseHandler.GetAllCourses)).Methods("GET")
	router.HandleFunc("/courses", courseHandler.GetActiveCourses).Methods("GET")
	router.HandleFunc("/courses/specific/{id}", courseHandler.GetCourse).Methods("GET")
	router.Handle("/courses/{courseId}", adminOnly(courseHandler.UpdateCourse)).Methods("PATCH")
	router.Handle("/courses/{courseId}/archive", adminOnly(courseHandler.ArchiveCourse)).Methods("PATCH")
	router.Handle("/courses/{courseId}/activate", adminOnly(courseHandler.ActivateCourse)).Methods("PATCH")
	router.HandleFunc("/courses/search", courseHandler.SearchCoursesByName).Methods("POST")
	router.HandleFunc("/courses/search-price-range", courseHandler.SearchCoursesByPriceRange).Methods("POST")

	// User routes
	router.HandleFunc("/users/register", userHandler.Register).Methods("POST")
	router.HandleFunc("/users/login", userHandler.Login).Methods("POST")
	router.HandleFunc("/users/check-email", userHandler.CheckEmail).Methods("POST")
	router.Handle("/users/details", adminOnly(userHandler.GetProfile)).Methods("GET")
	router.Handle("/users/enroll", authed(userHandler.Enroll)).Methods("POST")
	router.Handle("/users/get-enrollments", authed(userHandler.GetEnrollments)).Methods("GET")
	router.Handle("/users/reset-password", authed(userHandler.ResetPassword)).Methods("POST")
	router.Handle("/users/profile", authed(userHandler.UpdateProfile)).Methods("PUT")
	router.Handle("/users/updateAdmin", adminOnly(userHandler.UpdateAsAdmin)).Methods("PUT")

	// Google OAuth routes
	router.HandleFunc("/users/google", google.Login).Methods("GET")
	router.HandleFunc("/users/google/callback", google.Callback).Methods("GET")
	router.HandleFunc("/users/failed", google.Failed).Methods("GET")
	router.HandleFunc("/users/success", google.Success).Methods("GET")
	router.HandleFunc("/users/logout", google.Logout).Methods("GET")

	return router
}
