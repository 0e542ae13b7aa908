package models

import "strings"

// Field identifies a single form field of the draft.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldStreet      Field = "street"
	FieldCity        Field = "city"
	FieldCompanyName Field = "company"
	FieldWebsite     Field = "website"
)

// Fields lists every form field in display order.
var Fields = []Field{
	FieldName,
	FieldEmail,
	FieldPhone,
	FieldStreet,
	FieldCity,
	FieldCompanyName,
	FieldWebsite,
}

// Draft is the flattened projection of a User edited by an open
// create/edit session. Nested company/address values are scalars here
// and are rebuilt into their nested shape on commit.
type Draft struct {
	Name        string
	Email       string
	Phone       string
	Street      string
	City        string
	CompanyName string
	Website     string
}

// Flatten seeds a draft from an existing record for an edit session.
func Flatten(u User) Draft {
	return Draft{
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Street:      u.Address.Street,
		City:        u.Address.City,
		CompanyName: u.Company.Name,
		Website:     u.Website,
	}
}

// Get returns the current value of a single draft field.
func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldStreet:
		return d.Street
	case FieldCity:
		return d.City
	case FieldCompanyName:
		return d.CompanyName
	case FieldWebsite:
		return d.Website
	}
	return ""
}

// Set replaces the value of a single draft field. Unknown fields are
// ignored.
func (d *Draft) Set(f Field, value string) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldStreet:
		d.Street = value
	case FieldCity:
		d.City = value
	case FieldCompanyName:
		d.CompanyName = value
	case FieldWebsite:
		d.Website = value
	}
}

// LoginHandle derives a login handle from a display name by lowercasing
// it and joining the words with hyphens: "Jane Doe" -> "USER-jane-doe".
func LoginHandle(name string) string {
	words := strings.Fields(strings.ToLower(name))
	return "USER-" + strings.Join(words, "-")
}

// Synthesize builds a brand-new record from a create-session draft.
// The identifier is supplied by the store; the login handle is derived
// from the display name.
func (d Draft) Synthesize(id int) User {
	return User{
		ID:       id,
		Name:     d.Name,
		Username: LoginHandle(d.Name),
		Email:    d.Email,
		Phone:    d.Phone,
		Website:  d.Website,
		Company:  Company{Name: d.CompanyName},
		Address:  Address{Street: d.Street, City: d.City},
	}
}

// MergeInto overlays the draft onto an existing record. Top-level
// fields are taken from the draft as-is; previously set nested
// company/address values survive when the corresponding draft field is
// empty.
func (d Draft) MergeInto(u User) User {
	u.Name = d.Name
	u.Email = d.Email
	u.Phone = d.Phone
	u.Website = d.Website
	if d.Street != "" {
		u.Address.Street = d.Street
	}
	if d.City != "" {
		u.Address.City = d.City
	}
	if d.CompanyName != "" {
		u.Company.Name = d.CompanyName
	}
	return u
}
