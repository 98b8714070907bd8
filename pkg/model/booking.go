package model

import "time"

const (
	PackageBasic    = "basic"
	PackagePremium  = "premium"
	PackageUltimate = "ultimate"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID           string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	CarID        string    `json:"car_id" bson:"car_id" validate:"required,mongodb"`
	CarName      string    `json:"car_name" bson:"car_name" validate:"required,min=2"`
	PackageType  string    `json:"package_type" bson:"package_type" validate:"required,oneof=basic premium ultimate"`
	CustomerName string    `json:"customer_name" bson:"customer_name" validate:"required,min=2"`
	Email        string    `json:"email" bson:"email" validate:"required,email"`
	Phone        string    `json:"phone" bson:"phone" validate:"required"`
	Date         string    `json:"date" bson:"date" validate:"required"`
	Time         string    `json:"time" bson:"time" validate:"required"`
	Message      string    `json:"message,omitempty" bson:"message,omitempty" validate:"omitempty,max=1000"`
	Status       string    `json:"status" bson:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// AllowedStatusTransition reports whether a booking may move from one
// status to the next without an admin override. The lifecycle is
// one-directional: pending -> confirmed -> completed, and any
// non-terminal status may be cancelled.
func AllowedStatusTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}
