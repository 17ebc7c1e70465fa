package dto

// SubmitRequest is the intake payload. StudentID is flexible because the
// wizard sends the selected option value, which some clients serialize as
// a string and some as a number.
type SubmitRequest struct {
	StudentID      FlexibleID `json:"studentId"`
	BirthDate      string     `json:"birthDate"`
	FavoriteAnimal string     `json:"favoriteAnimal"`
	SelectedImage  string     `json:"selectedImage"`
}
