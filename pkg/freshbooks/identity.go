package freshbooks

import (
	"time"
)

// Business is a business the identity belongs to.
type Business struct {
	ID        int64  `json:"id"         yaml:"id"`
	Name      string `json:"name"       yaml:"name"`
	AccountID string `json:"account_id" yaml:"account_id"`
}

// BusinessMembership links an identity to a business with a role.
type BusinessMembership struct {
	ID       int64    `json:"id"       yaml:"id"`
	Role     string   `json:"role"     yaml:"role"`
	Business Business `json:"business" yaml:"business"`
}

// Identity is the currently authenticated user.
type Identity struct {
	IdentityID          int64                `json:"identity_id"          yaml:"identity_id"`
	FirstName           string               `json:"first_name"           yaml:"first_name"`
	LastName            string               `json:"last_name"            yaml:"last_name"`
	Email               string               `json:"email"                yaml:"email"`
	Language            string               `json:"language"             yaml:"language"`
	Timezone            string               `json:"timezone"             yaml:"timezone"`
	ConfirmedAt         time.Time            `json:"confirmed_at"         yaml:"confirmed_at"`
	CreatedAt           time.Time            `json:"created_at"           yaml:"created_at"`
	BusinessMemberships []BusinessMembership `json:"business_memberships" yaml:"business_memberships"`
}

// BusinessFields is the wire mapping for Business.
var BusinessFields = FieldMap[Business]{
	Int64Field("id", "ID", func(b *Business) *int64 { return &b.ID }),
	StringField("name", "Name", func(b *Business) *string { return &b.Name }),
	StringField("account_id", "AccountID", func(b *Business) *string { return &b.AccountID }),
}

// BusinessMembershipFields is the wire mapping for BusinessMembership.
var BusinessMembershipFields = FieldMap[BusinessMembership]{
	Int64Field("id", "ID", func(m *BusinessMembership) *int64 { return &m.ID }),
	StringField("role", "Role", func(m *BusinessMembership) *string { return &m.Role }),
	ObjectField("business", "Business", BusinessFields, func(m *BusinessMembership) *Business { return &m.Business }),
}

// IdentityFields is the wire mapping for Identity.
var IdentityFields = FieldMap[Identity]{
	Int64Field("identity_id", "IdentityID", func(i *Identity) *int64 { return &i.IdentityID }),
	StringField("first_name", "FirstName", func(i *Identity) *string { return &i.FirstName }),
	StringField("last_name", "LastName", func(i *Identity) *string { return &i.LastName }),
	StringField("email", "Email", func(i *Identity) *string { return &i.Email }),
	StringField("language", "Language", func(i *Identity) *string { return &i.Language }),
	StringField("timezone", "Timezone", func(i *Identity) *string { return &i.Timezone }),
	TimeField("confirmed_at", "ConfirmedAt", func(i *Identity) *time.Time { return &i.ConfirmedAt }),
	TimeField("created_at", "CreatedAt", func(i *Identity) *time.Time { return &i.CreatedAt }),
	ListField("business_memberships", "BusinessMemberships", BusinessMembershipFields,
		func(i *Identity) *[]BusinessMembership { return &i.BusinessMemberships }),
}
