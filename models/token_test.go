package models

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_GetUserID(t *testing.T) {
	token := &Token{RegisteredClaims: jwt.RegisteredClaims{Subject: "42"}}

	userID, err := token.GetUserID()

	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestToken_GetUserID_EmptySubject(t *testing.T) {
	token := &Token{}

	_, err := token.GetUserID()

	assert.Error(t, err)
}

func TestToken_GetUserID_NonNumericSubject(t *testing.T) {
	token := &Token{RegisteredClaims: jwt.RegisteredClaims{Subject: "john"}}

	_, err := token.GetUserID()

	assert.Error(t, err)
}

func TestToken_String(t *testing.T) {
	token := &Token{SignedString: "header.payload.signature"}

	assert.Equal(t, "header.payload.signature", token.String())
}
