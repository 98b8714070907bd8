package model

// SettingsKey is the fixed document key of the dealership settings
// singleton. Exactly one settings record exists at this key.
const SettingsKey = "contact"

type BusinessHours struct {
	MonSat string `json:"mon_sat" bson:"mon_sat"`
	Sunday string `json:"sunday" bson:"sunday"`
}

type DealershipSettings struct {
	ID            string        `json:"id" bson:"_id"`
	Address       string        `json:"address" bson:"address"`
	Phone         string        `json:"phone" bson:"phone"`
	Email         string        `json:"email" bson:"email" validate:"omitempty,email"`
	BusinessHours BusinessHours `json:"business_hours" bson:"business_hours"`
}

// SettingsUpdate is a partial merge-write into the settings singleton.
type SettingsUpdate struct {
	Address       string         `json:"address,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Email         string         `json:"email,omitempty" validate:"omitempty,email"`
	BusinessHours *BusinessHours `json:"business_hours,omitempty"`
}
