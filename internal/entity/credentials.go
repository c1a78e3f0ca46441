package entity

import "github.com/gofrs/uuid/v5"

type NilveraCredentials struct {
	CompanyID uuid.UUID `db:"company_id"`
	APIKey    string    `db:"api_key"`
	TestMode  bool      `db:"test_mode"`
	IsActive  bool      `db:"is_active"`
}

type VeribanCredentials struct {
	CompanyID     uuid.UUID `db:"company_id"`
	Username      string    `db:"username"`
	Password      string    `db:"password"`
	WebserviceURL string    `db:"webservice_url"`
	TestMode      bool      `db:"test_mode"`
	IsActive      bool      `db:"is_active"`
}
