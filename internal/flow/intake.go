// Package flow models the form clients as explicit state machines, so the
// wizard and admin session logic can be driven and tested independently of
// any rendering layer.
package flow

import (
	"context"
	"errors"
	"strconv"

	"github.com/ngvthanh/classform/internal/app/models"
	"github.com/ngvthanh/classform/internal/app/models/dto"
)

// Intake wizard errors, worded as the user sees them.
var (
	ErrNoSelection    = errors.New("Vui lòng chọn tên của bạn")
	ErrIncompleteForm = errors.New("Vui lòng điền đầy đủ thông tin")
	ErrRequestFailed  = errors.New("Có lỗi xảy ra")
)

// IntakeState is the wizard's position.
type IntakeState int

const (
	// ChoosingIdentity is the name-picker step.
	ChoosingIdentity IntakeState = iota
	// FillingAttributes is the detail form step.
	FillingAttributes
	// Submitted is terminal until an explicit reset.
	Submitted
)

// IntakeAPI is the service surface the wizard submits through.
// services.SubmissionService satisfies it directly.
type IntakeAPI interface {
	Submit(ctx context.Context, req dto.SubmitRequest) (*models.Submission, error)
}

// IntakeForm holds what the wizard has collected so far.
type IntakeForm struct {
	Student        *models.Student
	BirthDate      string
	FavoriteAnimal string
	SelectedImage  string
}

// IntakeFlow drives the two-step submission wizard.
type IntakeFlow struct {
	api    IntakeAPI
	state  IntakeState
	form   IntakeForm
	result *models.Submission
}

// NewIntakeFlow creates a wizard at the name-picker step.
func NewIntakeFlow(api IntakeAPI) *IntakeFlow {
	return &IntakeFlow{api: api, state: ChoosingIdentity}
}

// State returns the wizard's current position.
func (f *IntakeFlow) State() IntakeState {
	return f.state
}

// Form returns a copy of the collected fields.
func (f *IntakeFlow) Form() IntakeForm {
	return f.form
}

// Result returns the recorded submission once the wizard reached Submitted.
func (f *IntakeFlow) Result() *models.Submission {
	return f.result
}

// SelectStudent records the picked roster entry.
func (f *IntakeFlow) SelectStudent(student models.Student) {
	if f.state != ChoosingIdentity {
		return
	}
	f.form.Student = &student
}

// Next advances to the detail step. Without a selection the wizard
// re-prompts and stays where it is.
func (f *IntakeFlow) Next() error {
	if f.state != ChoosingIdentity {
		return nil
	}
	if f.form.Student == nil {
		return ErrNoSelection
	}
	f.state = FillingAttributes
	return nil
}

// Back returns to the name-picker step, keeping collected fields.
func (f *IntakeFlow) Back() {
	if f.state == FillingAttributes {
		f.state = ChoosingIdentity
	}
}

// SetBirthDate records the birth date field.
func (f *IntakeFlow) SetBirthDate(date string) {
	f.form.BirthDate = date
}

// SetFavoriteAnimal records the favorite animal field.
func (f *IntakeFlow) SetFavoriteAnimal(animal string) {
	f.form.FavoriteAnimal = animal
}

// SelectImage records the image choice. Only officially offered tokens
// can be picked; the set lives with the models so both sides agree.
func (f *IntakeFlow) SelectImage(token string) error {
	for _, valid := range models.ImageTokens {
		if token == valid {
			f.form.SelectedImage = token
			return nil
		}
	}
	return ErrIncompleteForm
}

// Submit sends the collected form. All three attributes are required; on
// a service failure the wizard stays at the detail step and surfaces a
// generic message regardless of the cause.
func (f *IntakeFlow) Submit(ctx context.Context) error {
	if f.state != FillingAttributes {
		return nil
	}
	if f.form.BirthDate == "" || f.form.FavoriteAnimal == "" || f.form.SelectedImage == "" {
		return ErrIncompleteForm
	}

	req := dto.SubmitRequest{
		StudentID:      dto.FlexibleID(strconv.FormatInt(f.form.Student.ID, 10)),
		BirthDate:      f.form.BirthDate,
		FavoriteAnimal: f.form.FavoriteAnimal,
		SelectedImage:  f.form.SelectedImage,
	}

	submission, err := f.api.Submit(ctx, req)
	if err != nil {
		return ErrRequestFailed
	}

	f.result = submission
	f.state = Submitted
	return nil
}

// Reset returns to the name-picker step with all fields cleared.
func (f *IntakeFlow) Reset() {
	f.form = IntakeForm{}
	f.result = nil
	f.state = ChoosingIdentity
}
