package freshbooks

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is an employee or user of a business. It supersedes the Staff
// resource used by FreshBooks Classic.
type TeamMember struct {
	UUID                   uuid.UUID `json:"uuid"                     yaml:"uuid"`
	FirstName              string    `json:"first_name"               yaml:"first_name"`
	MiddleName             string    `json:"middle_name"              yaml:"middle_name"`
	LastName               string    `json:"last_name"                yaml:"last_name"`
	Email                  string    `json:"email"                    yaml:"email"`
	JobTitle               string    `json:"job_title"                yaml:"job_title"`
	Street1                string    `json:"street_1"                 yaml:"street_1"`
	Street2                string    `json:"street_2"                 yaml:"street_2"`
	City                   string    `json:"city"                     yaml:"city"`
	Province               string    `json:"province"                 yaml:"province"`
	Country                string    `json:"country"                  yaml:"country"`
	PostalCode             string    `json:"postal_code"              yaml:"postal_code"`
	PhoneNumber            string    `json:"phone_number"             yaml:"phone_number"`
	BusinessID             int64     `json:"business_id"              yaml:"business_id"`
	BusinessRoleName       string    `json:"business_role_name"       yaml:"business_role_name"`
	Active                 bool      `json:"active"                   yaml:"active"`
	IdentityID             int64     `json:"identity_id"              yaml:"identity_id"`
	InvitationDateAccepted time.Time `json:"invitation_date_accepted" yaml:"invitation_date_accepted"`
	CreatedAt              time.Time `json:"created_at"               yaml:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"               yaml:"updated_at"`
}

// TeamMemberFields is the wire mapping for TeamMember.
var TeamMemberFields = FieldMap[TeamMember]{
	UUIDField("uuid", "UUID", func(m *TeamMember) *uuid.UUID { return &m.UUID }),
	StringField("first_name", "FirstName", func(m *TeamMember) *string { return &m.FirstName }),
	StringField("middle_name", "MiddleName", func(m *TeamMember) *string { return &m.MiddleName }),
	StringField("last_name", "LastName", func(m *TeamMember) *string { return &m.LastName }),
	StringField("email", "Email", func(m *TeamMember) *string { return &m.Email }),
	StringField("job_title", "JobTitle", func(m *TeamMember) *string { return &m.JobTitle }),
	StringField("street_1", "Street1", func(m *TeamMember) *string { return &m.Street1 }),
	StringField("street_2", "Street2", func(m *TeamMember) *string { return &m.Street2 }),
	StringField("city", "City", func(m *TeamMember) *string { return &m.City }),
	StringField("province", "Province", func(m *TeamMember) *string { return &m.Province }),
	StringField("country", "Country", func(m *TeamMember) *string { return &m.Country }),
	StringField("postal_code", "PostalCode", func(m *TeamMember) *string { return &m.PostalCode }),
	StringField("phone_number", "PhoneNumber", func(m *TeamMember) *string { return &m.PhoneNumber }),
	Int64Field("business_id", "BusinessID", func(m *TeamMember) *int64 { return &m.BusinessID }),
	StringField("business_role_name", "BusinessRoleName", func(m *TeamMember) *string { return &m.BusinessRoleName }),
	BoolField("active", "Active", func(m *TeamMember) *bool { return &m.Active }),
	Int64Field("identity_id", "IdentityID", func(m *TeamMember) *int64 { return &m.IdentityID }),
	TimeField("invitation_date_accepted", "InvitationDateAccepted", func(m *TeamMember) *time.Time { return &m.InvitationDateAccepted }),
	TimeField("created_at", "CreatedAt", func(m *TeamMember) *time.Time { return &m.CreatedAt }),
	TimeField("updated_at", "UpdatedAt", func(m *TeamMember) *time.Time { return &m.UpdatedAt }),
}
