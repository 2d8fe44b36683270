package models

import "time"

// Studio is a game studio profile. UID is generated server-side; CreatedBy
// records the email of the authenticated account that created the entry.
type Studio struct {
	UID         string    `json:"studio_uid"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Website     string    `json:"website"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
