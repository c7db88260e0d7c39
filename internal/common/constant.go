package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is prepended to the token value in the authorization header.
const BearerPrefix = "Bearer "

// RoleUser and RoleAdmin are the two roles known to the backend. A session
// with no stored role is treated as RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
