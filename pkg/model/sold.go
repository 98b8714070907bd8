package model

import "time"

// SoldRecord is populated out-of-band by the dealership; this layer only
// ever reads it.
type SoldRecord struct {
	ID       string    `json:"id,omitempty" bson:"_id,omitempty"`
	CarName  string    `json:"car_name" bson:"car_name"`
	Price    string    `json:"price" bson:"price"`
	SoldDate time.Time `json:"sold_date" bson:"sold_date"`
	Image    string    `json:"image" bson:"image"`
}
