// Package common defines shared constants and sentinel errors used across
// the irisctl client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// API / transport errors.
	ErrUnavailable  = errors.New("serveur indisponible")
	ErrUnauthorized = errors.New("non autorisé")

	// Session errors.
	ErrNotAuthenticated = errors.New("utilisateur non authentifié")
	ErrNotAdmin         = errors.New("droits administrateur requis")
	ErrTokenExpired     = errors.New("session expirée")

	// Validation errors.
	ErrInvalidEmail     = errors.New("adresse email invalide")
	ErrInvalidImageType = errors.New("format d'image non supporté")
	ErrImageTooLarge    = errors.New("image trop volumineuse")

	// Enrollment errors.
	ErrEnrollmentFailed = errors.New("échec de l'enrôlement")

	// Camera errors.
	ErrCameraUnavailable = errors.New("caméra inaccessible")
	ErrCameraInactive    = errors.New("caméra inactive")
)
