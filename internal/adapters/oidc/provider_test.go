package oidc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapIDTokenClaims(t *testing.T) {
	tests := []struct {
		name   string
		claims idTokenClaims
		want   idFields
	}{
		{
			name: "preferred username wins over sub",
			claims: idTokenClaims{
				Sub:               "sub-1",
				PreferredUsername: "anna",
				Email:             "anna@example.com",
				GivenName:         "Anna",
				FamilyName:        "Berg",
				Groups:            []string{"dtapi-translators"},
			},
			want: idFields{
				userID:     "anna",
				email:      "anna@example.com",
				givenName:  "Anna",
				familyName: "Berg",
				groups:     []string{"dtapi-translators"},
			},
		},
		{
			name:   "falls back to sub",
			claims: idTokenClaims{Sub: "sub-2"},
			want:   idFields{userID: "sub-2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapIDTokenClaims(tt.claims))
		})
	}
}

func TestFillFromUserInfoClaims(t *testing.T) {
	f := idFields{userID: "anna"}
	fillFromUserInfoClaims(&f, UserInfo{
		Subject:    "sub-1",
		Email:      "anna@example.com",
		GivenName:  "Anna",
		FamilyName: "Berg",
		Groups:     []string{"dtapi-customers"},
	})

	assert.Equal(t, "anna", f.userID, "existing fields are not overwritten")
	assert.Equal(t, "anna@example.com", f.email)
	assert.Equal(t, "Anna", f.givenName)
	assert.Equal(t, []string{"dtapi-customers"}, f.groups)
}

func TestGenerateRandomString(t *testing.T) {
	s, err := generateRandomString(32)
	assert.NoError(t, err)
	assert.Len(t, s, 32)

	s2, err := generateRandomString(32)
	assert.NoError(t, err)
	assert.NotEqual(t, s, s2)

	empty, err := generateRandomString(0)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNewProviderValidation(t *testing.T) {
	_, err := NewProvider(ProviderConfig{})
	assert.ErrorContains(t, err, "client ID is required")

	_, err = NewProvider(ProviderConfig{ClientID: "id"})
	assert.ErrorContains(t, err, "client secret is required")

	_, err = NewProvider(ProviderConfig{ClientID: "id", ClientSecret: "secret"})
	assert.ErrorContains(t, err, "redirect URL is required")

	_, err = NewProvider(ProviderConfig{ClientID: "id", ClientSecret: "secret", RedirectURL: "https://app/cb"})
	assert.ErrorContains(t, err, "discovery URL is required")
}
