package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/nextstop-api/internal/models"
	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
)

const (
	msgInvalidEmail = "Please enter a valid email address"
	msgInvalidPhone = "Please enter a valid phone number"
	minPhoneLength  = 10
)

var contactEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// CreateInquiryRequest is the contact form payload. Required fields are
// pointers so an absent key can be told apart from an empty string: only
// absence is reported as missing, empty values go through the format rules.
// There is no id or createdAt field, so values supplied by the caller are
// dropped on decode.
type CreateInquiryRequest struct {
	Name            *string `json:"name" validate:"required"`
	Email           *string `json:"email" validate:"required,contact_email"`
	Phone           *string `json:"phone" validate:"required,min=10"`
	Country         *string `json:"country" validate:"required"`
	ProgramInterest *string `json:"programInterest" validate:"required"`
	EducationLevel  *string `json:"educationLevel" validate:"required"`
	Message         *string `json:"message"`
}

// FieldError identifies the first offending field of a rejected payload.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// NewValidator returns a validator that reports json field names and knows
// the contact form rules.
func NewValidator() *validator.Validate {
	v := validator.New()
	configureValidator(v)
	return v
}

func configureValidator(v *validator.Validate) {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return len(value) <= 254 && contactEmailPattern.MatchString(value)
	})
}

// ValidateInquiry checks req and returns the record to store. Values are kept
// exactly as submitted. Missing fields are reported before format problems.
func ValidateInquiry(v *validator.Validate, req CreateInquiryRequest) (*models.Inquiry, error) {
	if err := v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Invalid inquiry payload")
		}
		fe := firstFieldError(verrs)
		return nil, appErrors.Wrap(fe, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fe.Message)
	}

	inquiry := &models.Inquiry{
		Name:            *req.Name,
		Email:           *req.Email,
		Phone:           *req.Phone,
		Country:         *req.Country,
		ProgramInterest: *req.ProgramInterest,
		EducationLevel:  *req.EducationLevel,
	}
	if req.Message != nil {
		msg := *req.Message
		inquiry.Message = &msg
	}
	return inquiry, nil
}

func firstFieldError(verrs validator.ValidationErrors) *FieldError {
	chosen := verrs[0]
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			chosen = fe
			break
		}
	}

	field := chosen.Field()
	switch {
	case chosen.Tag() == "required":
		return &FieldError{Field: field, Message: field + " is required"}
	case field == "email":
		return &FieldError{Field: field, Message: msgInvalidEmail}
	case field == "phone":
		return &FieldError{Field: field, Message: msgInvalidPhone}
	default:
		return &FieldError{Field: field, Message: field + " is invalid"}
	}
}
