package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/nextstop-api/pkg/errors"
)

func text(s string) *string { return &s }

func validInquiryRequest() CreateInquiryRequest {
	return CreateInquiryRequest{
		Name:            text("Rahul"),
		Email:           text("rahul@example.com"),
		Phone:           text("9999999999"),
		Country:         text("India"),
		ProgramInterest: text("MBBS"),
		EducationLevel:  text("Bachelor's"),
	}
}

func requireValidationMessage(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func TestValidateInquiryAcceptsValidPayload(t *testing.T) {
	req := validInquiryRequest()
	req.Message = text("Interested in September intake")

	inquiry, err := ValidateInquiry(NewValidator(), req)
	require.NoError(t, err)
	assert.Equal(t, "rahul@example.com", inquiry.Email)
	assert.Empty(t, inquiry.ID)
	assert.True(t, inquiry.CreatedAt.IsZero())
	require.NotNil(t, inquiry.Message)
	assert.Equal(t, "Interested in September intake", *inquiry.Message)
}

func TestValidateInquiryKeepsValuesVerbatim(t *testing.T) {
	req := CreateInquiryRequest{
		Name:            text("  Rahul  "),
		Email:           text("rahul@example.com"),
		Phone:           text("  123456789 "),
		Country:         text(" India"),
		ProgramInterest: text("MBBS "),
		EducationLevel:  text("\tBachelor's"),
		Message:         text("   "),
	}

	inquiry, err := ValidateInquiry(NewValidator(), req)
	require.NoError(t, err)
	assert.Equal(t, "  Rahul  ", inquiry.Name)
	assert.Equal(t, "  123456789 ", inquiry.Phone)
	assert.Equal(t, " India", inquiry.Country)
	assert.Equal(t, "MBBS ", inquiry.ProgramInterest)
	assert.Equal(t, "\tBachelor's", inquiry.EducationLevel)
	require.NotNil(t, inquiry.Message)
	assert.Equal(t, "   ", *inquiry.Message)
}

func TestValidateInquiryCopiesMessage(t *testing.T) {
	req := validInquiryRequest()
	req.Message = text("")

	inquiry, err := ValidateInquiry(NewValidator(), req)
	require.NoError(t, err)
	require.NotNil(t, inquiry.Message)
	assert.Equal(t, "", *inquiry.Message)

	*req.Message = "changed"
	assert.Equal(t, "", *inquiry.Message)
}

func TestValidateInquiryMissingFields(t *testing.T) {
	cases := map[string]func(*CreateInquiryRequest){
		"name":            func(r *CreateInquiryRequest) { r.Name = nil },
		"email":           func(r *CreateInquiryRequest) { r.Email = nil },
		"phone":           func(r *CreateInquiryRequest) { r.Phone = nil },
		"country":         func(r *CreateInquiryRequest) { r.Country = nil },
		"programInterest": func(r *CreateInquiryRequest) { r.ProgramInterest = nil },
		"educationLevel":  func(r *CreateInquiryRequest) { r.EducationLevel = nil },
	}
	v := NewValidator()
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			req := validInquiryRequest()
			mutate(&req)
			_, err := ValidateInquiry(v, req)
			requireValidationMessage(t, err, field+" is required")

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, field, fe.Field)
		})
	}
}

func TestValidateInquiryAcceptsEmptyFreeTextFields(t *testing.T) {
	req := validInquiryRequest()
	req.Name = text("")
	req.Country = text("")
	req.ProgramInterest = text("")
	req.EducationLevel = text("")

	inquiry, err := ValidateInquiry(NewValidator(), req)
	require.NoError(t, err)
	assert.Equal(t, "", inquiry.Name)
	assert.Equal(t, "", inquiry.Country)
}

func TestValidateInquiryRejectsBadEmail(t *testing.T) {
	v := NewValidator()
	for _, email := range []string{"", "   ", "not-an-email", "user@domain", "@domain.tld", "user@.tld x", "a b@c.de"} {
		req := validInquiryRequest()
		req.Email = text(email)
		_, err := ValidateInquiry(v, req)
		requireValidationMessage(t, err, "Please enter a valid email address")
	}
}

func TestValidateInquiryAcceptsEmailVariants(t *testing.T) {
	v := NewValidator()
	for _, email := range []string{"user@domain.tld", "first.last+intake@mail.example.co.in", "A_B-c@x.io"} {
		req := validInquiryRequest()
		req.Email = text(email)
		_, err := ValidateInquiry(v, req)
		assert.NoError(t, err, email)
	}
}

func TestValidateInquiryPhoneLength(t *testing.T) {
	v := NewValidator()
	for _, phone := range []string{"", "   ", "123456789"} {
		req := validInquiryRequest()
		req.Phone = text(phone)
		_, err := ValidateInquiry(v, req)
		requireValidationMessage(t, err, "Please enter a valid phone number")

		var fe *FieldError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, "phone", fe.Field)
	}

	for _, phone := range []string{"+7 (999) 1", "  123456789 "} {
		req := validInquiryRequest()
		req.Phone = text(phone)
		_, err := ValidateInquiry(v, req)
		assert.NoError(t, err, phone)
	}
}

func TestValidateInquiryReportsMissingBeforeFormat(t *testing.T) {
	req := validInquiryRequest()
	req.Email = text("not-an-email")
	req.EducationLevel = nil

	_, err := ValidateInquiry(NewValidator(), req)
	requireValidationMessage(t, err, "educationLevel is required")
}
