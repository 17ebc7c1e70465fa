package models

import "time"

// Student is one roster entry. The roster is seeded out-of-band and is
// read-only from the application's perspective.
type Student struct {
	ID   int64  `json:"id"`
	STT  int    `json:"stt"`
	Name string `json:"name"`
}

// Submission is one recorded form response. StudentID is nullable: rows
// from the pre-roster revision of the schema carry no student reference.
type Submission struct {
	ID             int64     `json:"id"`
	StudentID      *int64    `json:"student_id"`
	BirthDate      string    `json:"birth_date"`
	FavoriteAnimal string    `json:"favorite_animal"`
	SelectedImage  string    `json:"selected_image"`
	CreatedAt      time.Time `json:"created_at"`
}

// SubmissionDetail is a Submission enriched with its student's roster
// ordinal and display name. STT is nil when the student reference does
// not resolve.
type SubmissionDetail struct {
	Submission
	STT  *int   `json:"stt"`
	Name string `json:"name"`
}

// ImageTokens is the set of image choices the form offers. The server
// records whatever token the client sends; only the client restricts the
// choice to this set.
var ImageTokens = []string{"image1", "image2", "image3", "image4", "image5", "image6"}
