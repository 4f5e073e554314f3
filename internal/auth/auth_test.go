package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Kri4n/CourseBooking-API/internal/models"
)

func TestGenerateToken(t *testing.T) {
	a := New("secret", time.Hour)
	user := &models.User{ID: primitive.NewObjectID(), IsAdmin: true}

	tokenString, err := a.GenerateToken(user)

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := a.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.True(t, claims.IsAdmin)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_NonAdmin(t *testing.T) {
	a := New("secret", time.Hour)
	user := &models.User{ID: primitive.NewObjectID()}

	tokenString, err := a.GenerateToken(user)
	assert.NoError(t, err)

	claims, err := a.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	a := New("secret", time.Hour)

	_, err := a.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	a := New("secret", -time.Hour)
	user := &models.User{ID: primitive.NewObjectID()}

	tokenString, err := a.GenerateToken(user)
	assert.NoError(t, err)

	_, err = a.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	a1 := New("secret1", time.Hour)
	a2 := New("secret2", time.Hour)
	user := &models.User{ID: primitive.NewObjectID()}

	tokenString, err := a1.GenerateToken(user)
	assert.NoError(t, err)

	_, err = a2.ValidateToken(tokenString)
	assert.Error(t, err)
}
