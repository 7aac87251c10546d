package pets

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PetStatus is the whereabouts status of a pet.
type PetStatus string

const (
	StatusHome     PetStatus = "En Casa"
	StatusMissing  PetStatus = "Desaparecida"
	StatusDeceased PetStatus = "Fallecida"
)

// Pet is a pet registered by a resident.
type Pet struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ResidentID  primitive.ObjectID `bson:"residentId" json:"residentId"`
	Name        string             `bson:"name" json:"name"`
	Specie      string             `bson:"specie" json:"specie"`
	Breed       string             `bson:"breed" json:"breed"`
	Color       string             `bson:"color" json:"color"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      PetStatus          `bson:"status" json:"status"`
	PhotoURL    string             `bson:"petPhotoUrl" json:"petPhotoUrl"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreatePetInput carries the parsed multipart fields of POST /pets.
type CreatePetInput struct {
	ResidentID  primitive.ObjectID
	Name        string
	Specie      string
	Breed       string
	Color       string
	Description string
}

// UpdatePetInput carries the fields of PUT /pets/:petId.
type UpdatePetInput struct {
	Name        string    `json:"name"`
	Specie      string    `json:"specie"`
	Breed       string    `json:"breed"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	Status      PetStatus `json:"status"`
}
