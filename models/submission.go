package models

import "time"

// Offer and internship type labels used on the application form.
const (
	OfferTypeOnCampus  = "On-Campus"
	OfferTypeOffCampus = "Off-Campus"

	InternshipTypeOnly    = "Internship Only"
	InternshipTypeWithPPO = "Internship with PPO"
)

// Submission is one internship/NOC application. Student-supplied fields are
// immutable after intake; workflow fields are written only by the decision
// processor.
type Submission struct {
	SubmissionID      int    `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	ApplicationNumber string `gorm:"column:application_number;unique" json:"application_number"`

	StudentName        string    `gorm:"column:student_name" json:"student_name"`
	RegistrationNumber string    `gorm:"column:registration_number" json:"registration_number"`
	Email              string    `gorm:"column:email" json:"email"`
	Mobile             string    `gorm:"column:mobile" json:"mobile"`
	Department         string    `gorm:"column:department" json:"department"`
	Semester           string    `gorm:"column:semester" json:"semester"`
	Section            string    `gorm:"column:section" json:"section"`
	Gender             string    `gorm:"column:gender" json:"gender"`
	OfferType          string    `gorm:"column:offer_type" json:"offer_type"`
	CompanyName        string    `gorm:"column:company_name" json:"company_name"`
	CompanyCity        string    `gorm:"column:company_city" json:"company_city"`
	CompanyState       string    `gorm:"column:company_state" json:"company_state"`
	CompanyPin         string    `gorm:"column:company_pin" json:"company_pin"`
	InternshipType     string    `gorm:"column:internship_type" json:"internship_type"`
	PPOPackage         *float64  `gorm:"column:ppo_package" json:"ppo_package,omitempty"`
	Stipend            float64   `gorm:"column:stipend" json:"stipend"`
	StartDate          time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate            time.Time `gorm:"column:end_date" json:"end_date"`
	HRDEmail           string    `gorm:"column:hrd_email" json:"hrd_email"`
	HRDNumber          string    `gorm:"column:hrd_number" json:"hrd_number"`
	HasOfferLetter     bool      `gorm:"column:has_offer_letter" json:"has_offer_letter"`
	TermsAccepted      bool      `gorm:"column:terms_accepted" json:"terms_accepted"`

	Status           string     `gorm:"column:status" json:"status"`
	ReviewerID       *int       `gorm:"column:reviewer_id" json:"reviewer_id,omitempty"`
	ReviewerDecision *string    `gorm:"column:reviewer_decision" json:"reviewer_decision,omitempty"`
	ReviewerComments *string    `gorm:"column:reviewer_comments" json:"reviewer_comments,omitempty"`
	ReviewedAt       *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
	HODID            *int       `gorm:"column:hod_id" json:"hod_id,omitempty"`
	HODDecision      *string    `gorm:"column:hod_decision" json:"hod_decision,omitempty"`
	HODRemarks       *string    `gorm:"column:hod_remarks" json:"hod_remarks,omitempty"`
	HODDecidedAt     *time.Time `gorm:"column:hod_decided_at" json:"hod_decided_at,omitempty"`

	SubmittedAt time.Time  `gorm:"column:submitted_at" json:"submitted_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at" json:"deleted_at,omitempty"`

	// Relations
	Documents []SubmissionDocument `gorm:"foreignKey:SubmissionID" json:"documents,omitempty"`
	Reviewer  *User                `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	HOD       *User                `gorm:"foreignKey:HODID" json:"hod,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}
