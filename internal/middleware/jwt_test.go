package middleware_test

import (
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SANDREQSA22/ebay-mz/internal/middleware"
	"github.com/SANDREQSA22/ebay-mz/internal/models"
	"github.com/SANDREQSA22/ebay-mz/internal/utils"
)

func TestParseCustomerTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "super_secret")
	customer := models.Customer{
		ID:    gocql.TimeUUID(),
		Email: "nino@example.com",
	}

	token, err := utils.GenerateJWT(customer)
	require.NoError(t, err)

	customerID, email, err := middleware.ParseCustomerToken(token)
	require.NoError(t, err)
	assert.Equal(t, customer.ID.String(), customerID)
	assert.Equal(t, "nino@example.com", email)
}

func TestParseCustomerTokenRejectsGarbage(t *testing.T) {
	_, _, err := middleware.ParseCustomerToken("pas.un.jwt")
	assert.Error(t, err)
}

func TestParseCustomerTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "super_secret")
	claims := jwt.MapClaims{
		"customer_id": gocql.TimeUUID().String(),
		"exp":         time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("mauvais_secret"))
	require.NoError(t, err)

	_, _, err = middleware.ParseCustomerToken(forged)
	assert.Error(t, err)
}

func TestParseCustomerTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "super_secret")
	claims := jwt.MapClaims{
		"customer_id": gocql.TimeUUID().String(),
		"exp":         time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("super_secret"))
	require.NoError(t, err)

	_, _, err = middleware.ParseCustomerToken(expired)
	assert.Error(t, err)
}

func TestParseCustomerTokenRequiresCustomerID(t *testing.T) {
	t.Setenv("JWT_SECRET", "super_secret")
	claims := jwt.MapClaims{
		"email": "sans-id@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("super_secret"))
	require.NoError(t, err)

	_, _, err = middleware.ParseCustomerToken(token)
	assert.Error(t, err)
}
