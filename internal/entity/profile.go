package entity

import "database/sql"

// Profile is keyed by the id of the authenticated identity.
type Profile struct {
	Base

	Email     sql.NullString
	FullName  sql.NullString
	AvatarURL sql.NullString
	Role      sql.NullString
}
