package seed

import "github.com/noah-isme/nextstop-api/internal/models"

const (
	englishRussian   = "English/Russian"
	letterOnFile     = "#"
	pcbMinimum50     = "12th grade with Physics, Chemistry, Biology (minimum 50%)"
	pcmMinimum50     = "12th grade with Physics, Chemistry, Mathematics (minimum 50%)"
	engineeringFees  = "$3,000 - $5,000 per year"
	septemberFebruary = "September, February"
)

// Universities returns the partner universities.
func Universities() []models.University {
	return []models.University{
		{
			Name:                   "I.M. Sechenov First Moscow State Medical University",
			Location:               "Moscow, Russia",
			Description:            "Russia's oldest and most prestigious medical university, founded in 1758. Known for excellence in medical education and research with state-of-the-art facilities.",
			Programs:               []string{"MBBS", "Dentistry", "Pharmacy", "Nursing"},
			Medium:                 englishRussian,
			Established:            ptr("1758"),
			Ranking:                ptr("#1 Medical University in Russia"),
			LogoURL:                ptr(""),
			AuthorizationLetterURL: ptr(letterOnFile),
		},
		{
			Name:                   "Kazan Federal University",
			Location:               "Kazan, Russia",
			Description:            "One of Russia's oldest universities, established in 1804. A multidisciplinary institution offering programs in medicine, engineering, IT, and business.",
			Programs:               []string{"MBBS", "Engineering", "Computer Science", "Business Management"},
			Medium:                 englishRussian,
			Established:            ptr("1804"),
			Ranking:                ptr("Top 10 in Russia"),
			LogoURL:                ptr(""),
			AuthorizationLetterURL: ptr(letterOnFile),
		},
		{
			Name:                   "Peoples' Friendship University of Russia (RUDN)",
			Location:               "Moscow, Russia",
			Description:            "Globally diverse university with students from 150+ countries. Known for international programs and multicultural environment.",
			Programs:               []string{"MBBS", "Engineering", "Management", "Law", "Economics"},
			Medium:                 englishRussian,
			Established:            ptr("1960"),
			Ranking:                ptr("Top 15 in Russia"),
			LogoURL:                ptr(""),
			AuthorizationLetterURL: ptr(letterOnFile),
		},
		{
			Name:                   "Moscow State University (MSU)",
			Location:               "Moscow, Russia",
			Description:            "Russia's most prestigious university, consistently ranked among the top universities worldwide. Offers comprehensive programs across all fields.",
			Programs:               []string{"Engineering", "Physics", "Mathematics", "Computer Science", "Business"},
			Medium:                 englishRussian,
			Established:            ptr("1755"),
			Ranking:                ptr("#1 University in Russia"),
			LogoURL:                ptr(""),
			AuthorizationLetterURL: ptr(letterOnFile),
		},
		{
			Name:                   "Saint Petersburg State University",
			Location:               "Saint Petersburg, Russia",
			Description:            "One of the oldest universities in Russia with a rich history. Offers high-quality education in humanities, sciences, and professional programs.",
			Programs:               []string{"MBBS", "Engineering", "Computer Science", "Economics", "International Relations"},
			Medium:                 englishRussian,
			Established:            ptr("1724"),
			Ranking:                ptr("#2 University in Russia"),
			LogoURL:                ptr(""),
			AuthorizationLetterURL: ptr(letterOnFile),
		},
		{
			Name:                   "Siberian Federal University",
			Location:               "Krasnoyarsk, Russia",
			Description:            "Leading university in Siberia offering diverse programs in engineering, natural sciences, and medicine with modern infrastructure.",
			Programs:               []string{"Engineering", "Mining", "Computer Science", "Medicine"},
			Medium:                 englishRussian,
			Established:            ptr("2006"),
			Ranking:                ptr("Top 20 in Russia"),
			LogoURL:                ptr(""),
			AuthorizationLetterURL: ptr(letterOnFile),
		},
	}
}

// Programs returns the program catalog.
func Programs() []models.Program {
	return []models.Program{
		{
			Category:         "Medicine",
			Title:            "MBBS (Bachelor of Medicine, Bachelor of Surgery)",
			Duration:         "6 years",
			Medium:           englishRussian,
			Eligibility:      pcbMinimum50,
			TuitionFees:      "$4,000 - $7,000 per year",
			AdmissionIntakes: septemberFebruary,
			Description:      ptr("Comprehensive medical degree program recognized by WHO, MCI, and other international medical councils."),
		},
		{
			Category:         "Medicine",
			Title:            "Doctor of Medicine (MD)",
			Duration:         "3 years (after MBBS)",
			Medium:           englishRussian,
			Eligibility:      "MBBS degree from recognized university",
			TuitionFees:      "$5,000 - $8,000 per year",
			AdmissionIntakes: "September",
			Description:      ptr("Postgraduate medical specialization program in various fields including surgery, pediatrics, cardiology, and more."),
		},
		{
			Category:         "Medicine",
			Title:            "Bachelor of Dental Surgery (BDS)",
			Duration:         "5 years",
			Medium:           englishRussian,
			Eligibility:      pcbMinimum50,
			TuitionFees:      "$4,500 - $6,500 per year",
			AdmissionIntakes: "September",
			Description:      ptr("Professional dentistry program covering oral health, dental surgery, and clinical practice."),
		},
		{
			Category:         "Medicine",
			Title:            "Bachelor of Pharmacy",
			Duration:         "4 years",
			Medium:           englishRussian,
			Eligibility:      "12th grade with Physics, Chemistry, Biology",
			TuitionFees:      "$3,500 - $5,500 per year",
			AdmissionIntakes: septemberFebruary,
			Description:      ptr("Pharmaceutical sciences program covering drug development, pharmacology, and clinical pharmacy."),
		},
		{
			Category:         "Engineering",
			Title:            "Bachelor of Engineering (B.Tech) - Computer Science",
			Duration:         "4 years",
			Medium:           englishRussian,
			Eligibility:      pcmMinimum50,
			TuitionFees:      engineeringFees,
			AdmissionIntakes: "September",
			Description:      ptr("Comprehensive computer science program covering programming, algorithms, AI, and software engineering."),
		},
		{
			Category:         "Engineering",
			Title:            "Bachelor of Engineering - Mechanical",
			Duration:         "4 years",
			Medium:           englishRussian,
			Eligibility:      pcmMinimum50,
			TuitionFees:      engineeringFees,
			AdmissionIntakes: "September",
			Description:      ptr("Mechanical engineering program focusing on design, manufacturing, and automotive systems."),
		},
		{
			Category:         "Engineering",
			Title:            "Bachelor of Engineering - Civil",
			Duration:         "4 years",
			Medium:           englishRussian,
			Eligibility:      pcmMinimum50,
			TuitionFees:      engineeringFees,
			AdmissionIntakes: "September",
			Description:      ptr("Civil engineering program covering construction, structural design, and infrastructure development."),
		},
		{
			Category:         "Business & Management",
			Title:            "Bachelor of Business Administration (BBA)",
			Duration:         "4 years",
			Medium:           englishRussian,
			Eligibility:      "12th grade in any stream (minimum 50%)",
			TuitionFees:      "$2,500 - $4,500 per year",
			AdmissionIntakes: septemberFebruary,
			Description:      ptr("Comprehensive business program covering management, marketing, finance, and entrepreneurship."),
		},
		{
			Category:         "Business & Management",
			Title:            "Master of Business Administration (MBA)",
			Duration:         "2 years",
			Medium:           englishRussian,
			Eligibility:      "Bachelor's degree in any field",
			TuitionFees:      "$4,000 - $7,000 per year",
			AdmissionIntakes: "September",
			Description:      ptr("Advanced business management program with specializations in finance, marketing, and operations."),
		},
		{
			Category:         "Computer Science",
			Title:            "Bachelor of Computer Applications (BCA)",
			Duration:         "3 years",
			Medium:           englishRussian,
			Eligibility:      "12th grade with Mathematics",
			TuitionFees:      "$2,500 - $4,000 per year",
			AdmissionIntakes: "September",
			Description:      ptr("IT and computer applications program covering programming, databases, and web development."),
		},
		{
			Category:         "Computer Science",
			Title:            "Master of Computer Science (MCS)",
			Duration:         "2 years",
			Medium:           englishRussian,
			Eligibility:      "Bachelor's degree in Computer Science or related field",
			TuitionFees:      "$3,500 - $5,500 per year",
			AdmissionIntakes: "September",
			Description:      ptr("Advanced computer science program focusing on AI, machine learning, and advanced algorithms."),
		},
		{
			Category:         "Nursing",
			Title:            "Bachelor of Science in Nursing (BSN)",
			Duration:         "4 years",
			Medium:           englishRussian,
			Eligibility:      "12th grade with Physics, Chemistry, Biology",
			TuitionFees:      "$2,500 - $4,000 per year",
			AdmissionIntakes: "September",
			Description:      ptr("Professional nursing program with clinical training and patient care expertise."),
		},
	}
}

// Testimonials returns student testimonials.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			StudentName: "Rahul Sharma",
			Country:     "India",
			University:  "I.M. Sechenov University",
			Program:     "MBBS",
			Quote:       "NextStopRussia made my dream of studying medicine in Russia a reality. The entire process was transparent and smooth. I'm now in my 3rd year at Sechenov and couldn't be happier!",
			Year:        2022,
			ImageURL:    ptr(""),
		},
		{
			StudentName: "Fatima Khan",
			Country:     "Pakistan",
			University:  "Kazan Federal University",
			Program:     "Computer Science",
			Quote:       "The support from NextStopRussia was exceptional. They guided me through every step, from application to visa to arrival. Highly recommend their services!",
			Year:        2023,
			ImageURL:    ptr(""),
		},
		{
			StudentName: "Ahmed Al-Rashid",
			Country:     "Saudi Arabia",
			University:  "RUDN University",
			Program:     "Engineering",
			Quote:       "I was skeptical at first, but after verifying their official partnership letters, I felt confident. The team is professional and genuinely cares about students.",
			Year:        2023,
			ImageURL:    ptr(""),
		},
		{
			StudentName: "Priya Patel",
			Country:     "India",
			University:  "Moscow State University",
			Program:     "MBA",
			Quote:       "Studying at MSU has been an incredible experience. NextStopRussia's assistance with documentation and visa was invaluable. Thank you for making this possible!",
			Year:        2021,
			ImageURL:    ptr(""),
		},
		{
			StudentName: "Ali Reza",
			Country:     "Iran",
			University:  "Saint Petersburg State University",
			Program:     "Economics",
			Quote:       "The admission process was so much easier with NextStopRussia's help. They answered all my questions and provided excellent guidance throughout.",
			Year:        2022,
			ImageURL:    ptr(""),
		},
		{
			StudentName: "Ayesha Malik",
			Country:     "Pakistan",
			University:  "I.M. Sechenov University",
			Program:     "Dentistry",
			Quote:       "From application to arrival, everything was handled professionally. I'm grateful to NextStopRussia for helping me get into one of the best dental programs.",
			Year:        2023,
			ImageURL:    ptr(""),
		},
	}
}
