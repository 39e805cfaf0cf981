package model

import "time"

// Attendance is a guest's response to the invitation.
type Attendance string

const (
	AttendanceYes   Attendance = "yes"
	AttendanceNo    Attendance = "no"
	AttendanceMaybe Attendance = "maybe"
)

// IsValid reports whether the value is one of yes/no/maybe.
func (a Attendance) IsValid() bool {
	switch a {
	case AttendanceYes, AttendanceNo, AttendanceMaybe:
		return true
	}
	return false
}

// RSVP is a single guest response row.
type RSVP struct {
	ID                  int        `json:"id" db:"id"`
	Name                string     `json:"name" db:"name"`
	Email               string     `json:"email" db:"email"`
	Attendance          Attendance `json:"attendance" db:"attendance"`
	GuestCount          int        `json:"guest_count" db:"guest_count"`
	DietaryRestrictions *string    `json:"dietary_restrictions,omitempty" db:"dietary_restrictions"`
	Message             *string    `json:"message,omitempty" db:"message"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// UpdateRSVPParams carries a partial update. Nil fields keep the stored
// value; an update can therefore never clear an optional text column.
type UpdateRSVPParams struct {
	Name                *string
	Email               *string
	Attendance          *Attendance
	GuestCount          *int
	DietaryRestrictions *string
	Message             *string
}

// AttendanceStats is one aggregate row per attendance value present.
type AttendanceStats struct {
	Attendance  Attendance `json:"attendance" db:"attendance"`
	Count       int64      `json:"count" db:"count"`
	TotalGuests int64      `json:"total_guests" db:"total_guests"`
}

// CreateRSVPRequest is the POST /rsvp body. Required-field checks live
// in the handler so the error message can name the missing fields.
type CreateRSVPRequest struct {
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Attendance          Attendance `json:"attendance"`
	GuestCount          int        `json:"guest_count"`
	DietaryRestrictions *string    `json:"dietary_restrictions"`
	Message             *string    `json:"message"`
}

// UpdateRSVPRequest is the PUT /rsvp/:id body. Every field is optional.
type UpdateRSVPRequest struct {
	Name                *string     `json:"name"`
	Email               *string     `json:"email"`
	Attendance          *Attendance `json:"attendance"`
	GuestCount          *int        `json:"guest_count"`
	DietaryRestrictions *string     `json:"dietary_restrictions"`
	Message             *string     `json:"message"`
}
