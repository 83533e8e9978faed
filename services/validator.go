package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"internship-noc-api/models"
	"internship-noc-api/utils"
)

// Attachment limits for mail copy and offer letter uploads.
const (
	MaxDocumentSize  = 5 << 20 // 5 MiB
	DocumentMimeType = "application/pdf"
)

// Attachment describes an uploaded file as seen at intake, before anything
// is written to disk.
type Attachment struct {
	Filename    string
	Size        int64
	ContentType string
}

// SubmissionInput carries the raw form fields of a candidate application.
// Everything arrives as strings from the multipart form; validation parses
// the typed values.
type SubmissionInput struct {
	Name               string
	RegistrationNumber string
	Email              string
	Mobile             string
	Department         string
	Semester           string
	Section            string
	Gender             string
	OfferType          string
	CompanyName        string
	CompanyCity        string
	CompanyState       string
	CompanyPin         string
	InternshipType     string
	PPOPackage         string
	Stipend            string
	StartDate          string
	EndDate            string
	HRDEmail           string
	HRDNumber          string
	HasOfferLetter     bool
	TermsAccepted      bool
}

// FieldError is one inline-renderable validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SubmissionValidator checks a candidate submission and its attachments.
// It is pure: errors are returned as data, nothing is thrown or persisted.
type SubmissionValidator struct {
	// OfficialEmailDomain is the institutional mail domain the student
	// address must belong to.
	OfficialEmailDomain string

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewSubmissionValidator(officialDomain string) *SubmissionValidator {
	return &SubmissionValidator{OfficialEmailDomain: officialDomain, Now: time.Now}
}

// Validate returns the fully-typed submission ready for intake, or a
// non-empty ordered list of field errors. The returned submission carries
// no workflow fields yet; intake assigns those atomically.
func (v *SubmissionValidator) Validate(in SubmissionInput, mailCopy, offerLetter *Attachment) (*models.Submission, []FieldError) {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	required := []struct {
		field string
		value string
		label string
	}{
		{"name", in.Name, "Name"},
		{"registrationNumber", in.RegistrationNumber, "Registration number"},
		{"email", in.Email, "Official email"},
		{"mobile", in.Mobile, "Mobile number"},
		{"department", in.Department, "Department"},
		{"semester", in.Semester, "Semester"},
		{"section", in.Section, "Section"},
		{"gender", in.Gender, "Gender"},
		{"offerType", in.OfferType, "Offer type"},
		{"companyName", in.CompanyName, "Company name"},
		{"companyCity", in.CompanyCity, "Company city"},
		{"companyState", in.CompanyState, "Company state"},
		{"companyPin", in.CompanyPin, "PIN code"},
		{"internshipType", in.InternshipType, "Internship type"},
		{"stipend", in.Stipend, "Stipend"},
		{"startDate", in.StartDate, "Start date"},
		{"endDate", in.EndDate, "End date"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			add(r.field, r.label+" is required")
		}
	}

	email := strings.TrimSpace(in.Email)
	if email != "" && !v.isOfficialEmail(email) {
		add("email", fmt.Sprintf("Email must be a valid %s address", v.OfficialEmailDomain))
	}

	if mobile := strings.TrimSpace(in.Mobile); mobile != "" && !utils.IsDigits(mobile, 10) {
		add("mobile", "Mobile number must be 10 digits")
	}
	if pin := strings.TrimSpace(in.CompanyPin); pin != "" && !utils.IsDigits(pin, 6) {
		add("companyPin", "PIN code must be 6 digits")
	}

	switch strings.TrimSpace(in.OfferType) {
	case "", models.OfferTypeOnCampus, models.OfferTypeOffCampus:
	default:
		add("offerType", "Offer type must be On-Campus or Off-Campus")
	}

	internshipType := strings.TrimSpace(in.InternshipType)
	switch internshipType {
	case "", models.InternshipTypeOnly, models.InternshipTypeWithPPO:
	default:
		add("internshipType", "Internship type must be Internship Only or Internship with PPO")
	}

	var ppoPackage *float64
	if internshipType == models.InternshipTypeWithPPO {
		ppo := strings.TrimSpace(in.PPOPackage)
		if ppo == "" {
			add("ppoPackage", "PPO package is required for Internship with PPO")
		} else if value, err := strconv.ParseFloat(ppo, 64); err != nil || value <= 0 {
			add("ppoPackage", "PPO package must be a positive amount")
		} else {
			ppoPackage = &value
		}
	}

	var stipend float64
	if s := strings.TrimSpace(in.Stipend); s != "" {
		value, err := strconv.ParseFloat(s, 64)
		if err != nil || value < 0 {
			add("stipend", "Stipend must be a non-negative amount")
		} else {
			stipend = value
		}
	}

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	var startDate, endDate time.Time
	if s := strings.TrimSpace(in.StartDate); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			add("startDate", "Start date must be a valid date (YYYY-MM-DD)")
		} else {
			ty, tm, td := now().Date()
			today := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
			if parsed.Before(today) {
				add("startDate", "Start date cannot be in the past")
			} else {
				startDate = parsed
			}
		}
	}
	// No ordering check of endDate against startDate is enforced.
	if s := strings.TrimSpace(in.EndDate); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			add("endDate", "End date must be a valid date (YYYY-MM-DD)")
		} else {
			endDate = parsed
		}
	}

	hrdEmail := strings.TrimSpace(in.HRDEmail)
	hrdNumber := strings.TrimSpace(in.HRDNumber)
	if hrdEmail == "" && hrdNumber == "" {
		add("hrdEmail", "At least one HRD contact (email or phone) is required")
	}
	if hrdEmail != "" && !utils.ValidateEmail(hrdEmail) {
		add("hrdEmail", "HRD email must be a valid email address")
	}
	if hrdNumber != "" && !utils.IsDigits(hrdNumber, 10) {
		add("hrdNumber", "HRD phone must be 10 digits")
	}

	errs = v.checkAttachment(errs, "mailCopy", "Mail copy", mailCopy, true)
	errs = v.checkAttachment(errs, "offerLetter", "Offer letter", offerLetter, in.HasOfferLetter)

	if !in.TermsAccepted {
		add("termsAccepted", "You must accept the terms and conditions")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	submission := &models.Submission{
		StudentName:        strings.TrimSpace(in.Name),
		RegistrationNumber: strings.TrimSpace(in.RegistrationNumber),
		Email:              email,
		Mobile:             strings.TrimSpace(in.Mobile),
		Department:         strings.TrimSpace(in.Department),
		Semester:           strings.TrimSpace(in.Semester),
		Section:            strings.TrimSpace(in.Section),
		Gender:             strings.TrimSpace(in.Gender),
		OfferType:          strings.TrimSpace(in.OfferType),
		CompanyName:        strings.TrimSpace(in.CompanyName),
		CompanyCity:        strings.TrimSpace(in.CompanyCity),
		CompanyState:       strings.TrimSpace(in.CompanyState),
		CompanyPin:         strings.TrimSpace(in.CompanyPin),
		InternshipType:     internshipType,
		PPOPackage:         ppoPackage,
		Stipend:            stipend,
		StartDate:          startDate,
		EndDate:            endDate,
		HRDEmail:           hrdEmail,
		HRDNumber:          hrdNumber,
		HasOfferLetter:     in.HasOfferLetter,
		TermsAccepted:      in.TermsAccepted,
	}
	return submission, nil
}

func (v *SubmissionValidator) isOfficialEmail(email string) bool {
	if !utils.ValidateEmail(email) {
		return false
	}
	if v.OfficialEmailDomain == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(v.OfficialEmailDomain))
}

func (v *SubmissionValidator) checkAttachment(errs []FieldError, field, label string, att *Attachment, required bool) []FieldError {
	if att == nil {
		if required {
			errs = append(errs, FieldError{Field: field, Message: label + " (PDF) is required"})
		}
		return errs
	}
	if att.ContentType != DocumentMimeType {
		errs = append(errs, FieldError{Field: field, Message: label + " must be a PDF file"})
	}
	if att.Size > MaxDocumentSize {
		errs = append(errs, FieldError{Field: field, Message: label + " must not exceed 5 MB"})
	}
	return errs
}
