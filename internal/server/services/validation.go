package services

import (
	"fmt"

	"github.com/dmitrijs2005/userserver/internal/common"
	"github.com/dmitrijs2005/userserver/internal/server/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// minPasswordLen is counted in bytes.
const minPasswordLen = 6

type credentialsInput struct {
	Email    string
	Password string
}

func (r credentialsInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, 255), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(minPasswordLen, 0)),
	)
}

type passwordChangeInput struct {
	Email       string
	OldPassword string
	NewPassword string
}

func (r passwordChangeInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(minPasswordLen, 0)),
	)
}

func (u ProfileUpdate) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.ID, validation.Required),
		validation.Field(&u.Nickname, validation.Length(0, 64)),
		validation.Field(&u.Gender, validation.In(models.GenderMale, models.GenderFemale)),
		validation.Field(&u.Birthday, validation.Date(models.BirthdayLayout)),
	)
}

// invalid turns a validation failure into common.ErrArgumentInvalid while
// keeping the field messages.
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", common.ErrArgumentInvalid, err)
}
