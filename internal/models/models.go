// Package models defines the wire types exchanged with the IrisAuth backend
// and the client-side session and enrollment types built from them.
package models

import "time"

// User mirrors the backend user entity. The backend is French-speaking and
// uses nom/prenom field names on the wire.
type User struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Surname string `json:"nom"`
	Name    string `json:"prenom"`
	Role    string `json:"role"`
	Token   string `json:"token,omitempty"`
}

// DisplayName returns the name shown in the UI header: the part of the email
// before '@' with the first letter upper-cased, matching the legacy behavior.
func (u User) DisplayName() string {
	if u.Surname != "" {
		return u.Surname
	}
	return u.Email
}

// IrisRecord mirrors the backend iris data entity.
type IrisRecord struct {
	ID           int64     `json:"id"`
	User         *User     `json:"user,omitempty"`
	IrisCode     string    `json:"codeIris"`
	ImagePath    string    `json:"cheminImage"`
	EnrolledDate time.Time `json:"dateenrollement"`
}

// AuthLog is a single authentication attempt recorded by the backend.
type AuthLog struct {
	ID        int64     `json:"id"`
	User      *User     `json:"user,omitempty"`
	Success   bool      `json:"success"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
}

// LoginResponse is returned by POST /auth/login and POST /iris/authenticate.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// StatusResponse is the status/message envelope most backend endpoints use.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK reports whether the payload carries the success status.
func (r StatusResponse) OK() bool { return r.Status == "success" }

// UsersResponse is returned by GET /users.
type UsersResponse struct {
	StatusResponse
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// UserResponse is returned by GET /users/{id} and PUT /users/{id}.
type UserResponse struct {
	StatusResponse
	User *User `json:"user"`
}

// EmailCheckResponse is returned by GET /users/check-email.
type EmailCheckResponse struct {
	StatusResponse
	Exists bool   `json:"exists"`
	Email  string `json:"email"`
}

// EnrollResponse is returned by POST /iris/enroll.
type EnrollResponse struct {
	StatusResponse
	User *User `json:"user,omitempty"`
}

// IrisRecordsResponse is returned by GET /iris/records and GET /iris/user/{id}.
type IrisRecordsResponse struct {
	StatusResponse
	Records []IrisRecord `json:"records"`
	Total   int          `json:"total"`
}

// CompareResponse is returned by POST /iris/compare.
type CompareResponse struct {
	StatusResponse
	Match    bool    `json:"match"`
	Distance float64 `json:"distance"`
}

// AuthLogsResponse is returned by GET /auth/logs and GET /auth/logs/user/{id}.
type AuthLogsResponse struct {
	StatusResponse
	Logs  []AuthLog `json:"logs"`
	Total int       `json:"total"`
}

// DashboardStats is returned by GET /stats/dashboard.
type DashboardStats struct {
	StatusResponse
	TotalUsers     int `json:"totalUsers"`
	TotalIris      int `json:"totalIris"`
	TotalAttempts  int `json:"totalAttempts"`
	FailedAttempts int `json:"failedAttempts"`
}

// UserStats is returned by GET /stats/user/{id}.
type UserStats struct {
	StatusResponse
	Attempts  int        `json:"attempts"`
	Successes int        `json:"successes"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// AdminProfile is returned by GET /admin/profile.
type AdminProfile struct {
	StatusResponse
	Email       string     `json:"email"`
	Surname     string     `json:"nom"`
	Name        string     `json:"prenom"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty"`
}

// AdminProfileUpdate is returned by PUT /admin/profile. This endpoint uses a
// boolean success flag rather than the string status envelope.
type AdminProfileUpdate struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Surname string `json:"nom"`
	Name    string `json:"prenom"`
}

// Session is the client-held identity created on successful login or iris
// authentication. Presence of a non-empty Email means "authenticated".
type Session struct {
	Email       string
	DisplayName string
	Role        string
	Token       string
}

// EnrollmentDraft carries the wizard's user data across steps. The capture
// artifact itself (file bytes) travels separately.
type EnrollmentDraft struct {
	Surname        string
	Name           string
	Email          string
	Role           string
	Password       string
	EnrollmentDate string
}
