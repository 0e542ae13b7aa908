// Package models defines the user directory entities and the flattened
// form draft used by create/edit sessions.
package models

// Address is the postal part of a user record. Only the fields shown in
// the directory form are kept.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// Company is the employer embedded in a user record.
type Company struct {
	Name string `json:"name"`
}

// User is a single directory record. The JSON tags mirror the remote
// placeholder endpoint, which nests company and address objects; extra
// remote fields are ignored on decode.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
	Address  Address `json:"address"`
}
