package oauth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Kri4n/CourseBooking-API/internal/config"
	"github.com/Kri4n/CourseBooking-API/internal/models"
	"github.com/Kri4n/CourseBooking-API/internal/store"
	"github.com/Kri4n/CourseBooking-API/internal/utils"
)

const (
	sessionName     = "course-booking-session"
	userInfoURL     = "https://www.googleapis.com/oauth2/v2/userinfo"
	successRedirect = "/users/success"
	failedRedirect  = "/users/failed"
)

type googleUserInfo struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// GoogleAuth handles the Google OAuth login flow. Session state moves
// Unauthenticated -> PendingProviderCallback (state nonce stored) ->
// Authenticated (display name stored).
type GoogleAuth struct {
	config   *oauth2.Config
	sessions *sessions.CookieStore
	users    store.UserStore
	timeout  time.Duration
}

func NewGoogleAuth(cfg config.Config, users store.UserStore) *GoogleAuth {
	return &GoogleAuth{
		config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		sessions: sessions.NewCookieStore([]byte(cfg.SessionSecret)),
		users:    users,
		timeout:  10 * time.Second,
	}
}

// Login redirects the user to the Google consent screen
func (g *GoogleAuth) Login(w http.ResponseWriter, r *http.Request) {
	state, err := generateState()
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}

	session, _ := g.sessions.Get(r, sessionName)
	session.Values["state"] = state
	if err := session.Save(r, w); err != nil {
		utils.WriteServerError(w, err)
		return
	}

	// prompt=select_account forces the account chooser on every login
	url := g.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// Callback exchanges the provider code, upserts the user record and marks
// the session authenticated
func (g *GoogleAuth) Callback(w http.ResponseWriter, r *http.Request) {
	session, _ := g.sessions.Get(r, sessionName)

	state, _ := session.Values["state"].(string)
	if state == "" || r.URL.Query().Get("state") != state {
		log.Print("OAuth callback state mismatch")
		http.Redirect(w, r, failedRedirect, http.StatusTemporaryRedirect)
		return
	}
	delete(session.Values, "state")

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, failedRedirect, http.StatusTemporaryRedirect)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), g.timeout)
	defer cancel()

	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		log.Printf("OAuth code exchange failed: %v", err)
		http.Redirect(w, r, failedRedirect, http.StatusTemporaryRedirect)
		return
	}

	info, err := g.fetchUserInfo(ctx, token)
	if err != nil {
		log.Printf("Failed to fetch Google user info: %v", err)
		http.Redirect(w, r, failedRedirect, http.StatusTemporaryRedirect)
		return
	}

	if err := g.ensureUser(ctx, info); err != nil {
		log.Printf("Failed to upsert Google user: %v", err)
		http.Redirect(w, r, failedRedirect, http.StatusTemporaryRedirect)
		return
	}

	session.Values["authenticated"] = true
	session.Values["displayName"] = info.Name
	if err := session.Save(r, w); err != nil {
		utils.WriteServerError(w, err)
		return
	}

	http.Redirect(w, r, successRedirect, http.StatusTemporaryRedirect)
}

// Failed answers the failure redirect target
func (g *GoogleAuth) Failed(w http.ResponseWriter, r *http.Request) {
	utils.WriteMessage(w, http.StatusUnauthorized, "Failed")
}

// Success greets the logged in user by display name
func (g *GoogleAuth) Success(w http.ResponseWriter, r *http.Request) {
	session, _ := g.sessions.Get(r, sessionName)

	authenticated, _ := session.Values["authenticated"].(bool)
	if !authenticated {
		utils.WriteMessage(w, http.StatusUnauthorized, "User is not authenticated")
		return
	}

	displayName, _ := session.Values["displayName"].(string)
	utils.WriteMessage(w, http.StatusOK, fmt.Sprintf("Welcome %s", displayName))
}

// Logout destroys the session and redirects to the site root
func (g *GoogleAuth) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := g.sessions.Get(r, sessionName)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		utils.WriteServerError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
}

func (g *GoogleAuth) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	resp, err := g.config.Client(ctx, token).Get(userInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ensureUser creates a user record on first OAuth login
func (g *GoogleAuth) ensureUser(ctx context.Context, info *googleUserInfo) error {
	existing, err := g.users.FindByEmail(ctx, info.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return g.users.Insert(ctx, &models.User{
		ID:        primitive.NewObjectID(),
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
		Email:     info.Email,
		CreatedAt: time.Now(),
	})
}

func generateState() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
