package models

import "github.com/lib/pq"

// University is a partner institution shown in the catalog.
// Programs keeps display order.
type University struct {
	ID                     string         `db:"id" json:"id"`
	Name                   string         `db:"name" json:"name"`
	Location               string         `db:"location" json:"location"`
	Description            string         `db:"description" json:"description"`
	Programs               pq.StringArray `db:"programs" json:"programs"`
	Medium                 string         `db:"medium" json:"medium"`
	Established            *string        `db:"established" json:"established"`
	Ranking                *string        `db:"ranking" json:"ranking"`
	LogoURL                *string        `db:"logo_url" json:"logoUrl"`
	AuthorizationLetterURL *string        `db:"authorization_letter_url" json:"authorizationLetterUrl"`
}

// HasAuthorizationLetter reports whether a partnership document is on file.
func (u University) HasAuthorizationLetter() bool {
	return u.AuthorizationLetterURL != nil && *u.AuthorizationLetterURL != ""
}

// UniversityVerification describes the public verification link encoded in
// the QR code printed on a partnership letter.
type UniversityVerification struct {
	UniversityID           string  `json:"universityId"`
	Name                   string  `json:"name"`
	Location               string  `json:"location"`
	Verified               bool    `json:"verified"`
	VerifyURL              string  `json:"verifyUrl"`
	AuthorizationLetterURL *string `json:"authorizationLetterUrl"`
}
