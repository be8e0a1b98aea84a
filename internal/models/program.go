package models

// Program is a degree offering. Category is free text used for grouping.
type Program struct {
	ID               string  `db:"id" json:"id"`
	Category         string  `db:"category" json:"category"`
	Title            string  `db:"title" json:"title"`
	Duration         string  `db:"duration" json:"duration"`
	Medium           string  `db:"medium" json:"medium"`
	Eligibility      string  `db:"eligibility" json:"eligibility"`
	TuitionFees      string  `db:"tuition_fees" json:"tuitionFees"`
	AdmissionIntakes string  `db:"admission_intakes" json:"admissionIntakes"`
	Description      *string `db:"description" json:"description"`
}
