package model

// VehicleSpecs holds the headline performance figures shown on the
// vehicle detail page. All values are display strings ("520 HP").
type VehicleSpecs struct {
	Power        string `json:"power" bson:"power" validate:"required"`
	Speed        string `json:"speed" bson:"speed" validate:"required"`
	Acceleration string `json:"acceleration" bson:"acceleration" validate:"required"`
	Range        string `json:"range" bson:"range" validate:"required"`
}

type Vehicle struct {
	ID          string       `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name        string       `json:"name" bson:"name" validate:"required,min=2"`
	Price       string       `json:"price" bson:"price" validate:"required"`
	Images      []string     `json:"images" bson:"images" validate:"required,min=5,max=10,dive,url"`
	Type        string       `json:"type" bson:"type" validate:"required"`
	Description string       `json:"description" bson:"description" validate:"required,min=10"`
	Specs       VehicleSpecs `json:"specs" bson:"specs" validate:"required"`
	Features    []string     `json:"features" bson:"features" validate:"omitempty,dive,min=1"`
	Featured    bool         `json:"featured" bson:"featured"`
}

// VehicleUpdate carries a partial admin edit. Nil / zero fields are left
// untouched by the merge; last writer wins, there is no concurrency check.
type VehicleUpdate struct {
	Name        string        `json:"name,omitempty" validate:"omitempty,min=2"`
	Price       string        `json:"price,omitempty"`
	Images      []string      `json:"images,omitempty" validate:"omitempty,min=5,max=10,dive,url"`
	Type        string        `json:"type,omitempty"`
	Description string        `json:"description,omitempty" validate:"omitempty,min=10"`
	Specs       *VehicleSpecs `json:"specs,omitempty"`
	Features    []string      `json:"features,omitempty"`
	Featured    *bool         `json:"featured,omitempty"`
}
