package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Address is the nested address sub-document stored verbatim on a patient.
type Address struct {
	StreetName  string `bson:"street_name" json:"street_name"`
	BlockNumber string `bson:"block_number" json:"block_number"`
	UnitNumber  string `bson:"unit_number" json:"unit_number"`
	PostalCode  string `bson:"postal_code" json:"postal_code"`
}

// Patient is the aggregate root for the patient domain.
// DentistID references a document in the dentists collection and is resolved
// from the dentist's name at write time.
type Patient struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	DOB                 string             `bson:"dob" json:"dob"`
	Gender              string             `bson:"gender" json:"gender"`
	Address             Address            `bson:"address" json:"address"`
	AppointmentDateTime string             `bson:"appointment_date_time" json:"appointment_date_time"`
	DentistID           primitive.ObjectID `bson:"dentist_id" json:"dentist_id"`
}
