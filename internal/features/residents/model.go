package residents

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusActive is the status a freshly registered resident gets.
const StatusActive = "Activo"

// Resident is a registered resident of a house.
type Resident struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	PhotoURL    string             `bson:"residentPhotoUrl" json:"residentPhotoUrl"`
	InePhotoURL string             `bson:"inePhotoUrl" json:"inePhotoUrl"`
	Status      string             `bson:"status" json:"status"`
	HouseID     primitive.ObjectID `bson:"houseId" json:"houseId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// House ties a resident to a residential.
type House struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ResidentialID primitive.ObjectID `bson:"residentialId" json:"residentialId"`
	HouseNumber   string             `bson:"houseNumber" json:"houseNumber"`
}

// ResidentProfile is a resident plus the residential their house belongs to,
// which the mobile app needs on login.
type ResidentProfile struct {
	Resident
	ResidentialID primitive.ObjectID `json:"residentialId"`
}
