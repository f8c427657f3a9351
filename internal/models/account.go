package models

// Account represents an account row.
type Account struct {
	AccountID    string `db:"account_id"`
	Code         string `db:"code"`
	BaseCode     string `db:"base_code"`
	No           int    `db:"no"`
	Title        string `db:"title"`
	IsNeedOffset bool   `db:"is_need_offset"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
