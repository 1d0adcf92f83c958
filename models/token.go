package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is the credential pair used to authenticate against the cloud API.
//
// RefreshToken is the long-lived, user-supplied credential (the cloud API
// key). AccessToken is the short-lived JWT obtained from the auth endpoint;
// a missing, invalid, or expired access token is replaced by exchanging the
// refresh token.
type Token struct {
	// AccessToken is the short-lived JWT attached to every authenticated
	// request as a bearer token. May be empty before the first refresh.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived credential exchanged for access
	// tokens. Never sent to the API outside the token endpoint.
	RefreshToken string `json:"refresh_token,omitempty"`
}

// TokenResponse is the body returned by the OpenID Connect token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ExpiresAt returns the expiry of the access token taken from its "exp"
// claim. The signature is not verified; the client only needs the claim to
// decide whether a refresh is due before the server would reject the token.
// The second return value is false when the token is absent, unparsable, or
// carries no expiry.
func (t Token) ExpiresAt() (time.Time, bool) {
	if t.AccessToken == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the access token is past its "exp" claim at the
// given instant. A token without a readable expiry is treated as not
// expired; the server's 401 remains the authority in that case.
func (t Token) Expired(now time.Time) bool {
	exp, ok := t.ExpiresAt()
	if !ok {
		return false
	}
	return !now.Before(exp)
}
