package validators

import "go.mongodb.org/mongo-driver/bson"

var SoldRecordValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"car_name",
			"price",
			"sold_date",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"car_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"price": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"sold_date": bson.M{
				"bsonType": "date",
			},

			"image": bson.M{
				"bsonType": "string",
			},
		},
	},
}

var SettingsValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"address": bson.M{
				"bsonType": "string",
			},

			"phone": bson.M{
				"bsonType": "string",
			},

			"email": bson.M{
				"bsonType": "string",
			},

			"business_hours": bson.M{
				"bsonType": "object",
				"properties": bson.M{
					"mon_sat": bson.M{"bsonType": "string"},
					"sunday":  bson.M{"bsonType": "string"},
				},
			},
		},
	},
}
