package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("go-shop-api", 42, 72*time.Hour, "secret")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.NotNil(t, token.Token)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name          string
		issuer        string
		tokenDuration time.Duration
		signKey       string
	}{
		{name: "empty issuer", issuer: "", tokenDuration: time.Hour, signKey: "secret"},
		{name: "zero duration", issuer: "go-shop-api", tokenDuration: 0, signKey: "secret"},
		{name: "empty sign key", issuer: "go-shop-api", tokenDuration: time.Hour, signKey: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := GenerateJWTToken(test.issuer, 1, test.tokenDuration, test.signKey)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken("go-shop-api", 42, time.Hour, "secret")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret", "go-shop-api")

	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	generated, err := GenerateJWTToken("go-shop-api", 42, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "another-secret", "go-shop-api")

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken("someone-else", 42, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(generated.SignedString, "secret", "go-shop-api")

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_ExpiredToken(t *testing.T) {
	generated, err := GenerateJWTToken("go-shop-api", 42, time.Nanosecond, "secret")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = ValidateAndParseJWTToken(generated.SignedString, "secret", "go-shop-api")

	assert.Error(t, err)
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "secret", "go-shop-api")
	assert.Error(t, err)
}

func TestTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bare token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "bearer scheme", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase bearer", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "surrounding spaces", header: "  abc.def.ghi  ", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "only spaces", header: "   ", wantErr: true},
		{name: "unknown scheme with extra parts", header: "Basic user pass", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := TokenFromAuthHeader(test.header)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}
