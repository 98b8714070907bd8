package validators

import "go.mongodb.org/mongo-driver/bson"

var VehicleValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"price",
			"images",
			"type",
			"description",
			"specs",
			"featured",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 200,
			},

			"price": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"images": bson.M{
				"bsonType": "array",
				"minItems": 5,
				"maxItems": 10,
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"type": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"description": bson.M{
				"bsonType":  "string",
				"minLength": 10,
			},

			"specs": bson.M{
				"bsonType": "object",
				"required": []string{"power", "speed", "acceleration", "range"},
				"properties": bson.M{
					"power":        bson.M{"bsonType": "string"},
					"speed":        bson.M{"bsonType": "string"},
					"acceleration": bson.M{"bsonType": "string"},
					"range":        bson.M{"bsonType": "string"},
				},
			},

			"features": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
			},

			"featured": bson.M{
				"bsonType": "bool",
			},
		},
	},
}
