package models

// Testimonial is a student quote. University and Program are display strings,
// not references to catalog records.
type Testimonial struct {
	ID          string  `db:"id" json:"id"`
	StudentName string  `db:"student_name" json:"studentName"`
	Country     string  `db:"country" json:"country"`
	University  string  `db:"university" json:"university"`
	Program     string  `db:"program" json:"program"`
	Quote       string  `db:"quote" json:"quote"`
	Year        int     `db:"year" json:"year"`
	ImageURL    *string `db:"image_url" json:"imageUrl"`
}

// KnownTestimonialCountries are the countries the site has a flag for.
// Any other country is still valid and rendered with a generic marker.
var KnownTestimonialCountries = []string{
	"India",
	"Pakistan",
	"Bangladesh",
	"Nepal",
	"Sri Lanka",
	"Egypt",
	"Nigeria",
	"Saudi Arabia",
	"Iran",
}

// IsKnownCountry reports whether country has a dedicated display marker.
func IsKnownCountry(country string) bool {
	for _, known := range KnownTestimonialCountries {
		if known == country {
			return true
		}
	}
	return false
}
