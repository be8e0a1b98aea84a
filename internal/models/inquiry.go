package models

import "time"

// Inquiry is a lead captured from the contact form. ID and CreatedAt are
// always assigned by the store.
type Inquiry struct {
	ID              string    `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Email           string    `db:"email" json:"email"`
	Phone           string    `db:"phone" json:"phone"`
	Country         string    `db:"country" json:"country"`
	ProgramInterest string    `db:"program_interest" json:"programInterest"`
	EducationLevel  string    `db:"education_level" json:"educationLevel"`
	Message         *string   `db:"message" json:"message"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
}

// InquiryReceipt is returned to the submitter after a successful create.
type InquiryReceipt struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// InquirySubmission is the 201 body for the contact form.
type InquirySubmission struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Inquiry InquiryReceipt `json:"inquiry"`
}

// Receipt returns the public acknowledgement for the inquiry.
func (i Inquiry) Receipt() InquiryReceipt {
	return InquiryReceipt{ID: i.ID, CreatedAt: i.CreatedAt}
}

// InquiryExportFormat enumerates supported lead export formats.
type InquiryExportFormat string

const (
	InquiryExportCSV InquiryExportFormat = "csv"
	InquiryExportPDF InquiryExportFormat = "pdf"
)
