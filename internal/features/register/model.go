package register

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvitationCode is a single-use code that lets a resident sign up into a
// residential.
type InvitationCode struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Code          string             `bson:"code" json:"code"`
	ResidentialID primitive.ObjectID `bson:"residentialId" json:"residentialId"`
	IsUsed        bool               `bson:"isUsed" json:"isUsed"`
}

// ValidateCodeRequest is the body of POST /register/validate-code.
type ValidateCodeRequest struct {
	Code string `json:"code"`
}

// ValidateCodeResult tells the app which residential the code belongs to and
// which code row to consume on registration.
type ValidateCodeResult struct {
	CodeID        primitive.ObjectID `json:"codeId"`
	ResidentialID primitive.ObjectID `json:"residentialId"`
}

// RegisterResidentInput carries the parsed multipart fields of
// POST /register/resident.
type RegisterResidentInput struct {
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	HouseNumber   string
	ResidentialID primitive.ObjectID
	CodeID        primitive.ObjectID
}
