package domain

// WorkerProfile is the one-to-one extension of a Worker user. A worker never
// exists without one: registration creates an empty default profile in the
// same transaction as the user row.
type WorkerProfile struct {
	ID              int64  `json:"id" db:"id"`
	UserID          int64  `json:"user_id" db:"user_id"`
	City            string `json:"city" db:"city"`
	Phone           string `json:"phone" db:"phone"`
	YearsExperience int    `json:"years_experience" db:"years_experience"`
	ProfilePhoto    string `json:"profile_photo" db:"profile_photo"`
}

// DefaultProfilePhoto is the placeholder assigned to new worker profiles.
const DefaultProfilePhoto = "/uploads/profile-photos/default.jpg"

// NewDefaultWorkerProfile returns the empty profile created as a side effect
// of worker registration.
func NewDefaultWorkerProfile(userID int64) *WorkerProfile {
	return &WorkerProfile{
		UserID:       userID,
		ProfilePhoto: DefaultProfilePhoto,
	}
}

// WorkerService links a worker profile to a catalog service (many-to-many).
// Catalog management itself lives outside this core; the link rows matter here
// because the cascade must remove them before the profile.
type WorkerService struct {
	WorkerProfileID int64 `json:"worker_profile_id" db:"worker_profile_id"`
	ServiceID       int64 `json:"service_id" db:"service_id"`
}

// WorkerPhoto is a gallery attachment owned by a worker profile. File storage
// is out of scope; only the rows participate in the cascade.
type WorkerPhoto struct {
	ID              int64  `json:"id" db:"id"`
	WorkerProfileID int64  `json:"worker_profile_id" db:"worker_profile_id"`
	ImageURL        string `json:"image_url" db:"image_url"`
	Description     string `json:"description" db:"description"`
}
