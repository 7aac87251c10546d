package reports

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is one of the report categories residents can pick. Wire values
// are the Spanish strings the mobile app sends.
type Category string

const (
	CategoryMaintenance        Category = "Mantenimiento"
	CategorySecurity           Category = "Seguridad"
	CategoryCleaning           Category = "Limpieza"
	CategoryCommonAreas        Category = "Áreas Comunes"
	CategoryAdministration     Category = "Administración"
	CategoryNeighborComplaints Category = "Quejas de Vecinos"
	CategoryOther              Category = "Otro"
)

// Urgency is the reported urgency level.
type Urgency string

const (
	UrgencyLow    Urgency = "Bajo"
	UrgencyMedium Urgency = "Medio"
	UrgencyHigh   Urgency = "Alto"
)

// StatusPending is the status every new report starts in.
const StatusPending = "Pendiente"

// Image count bounds per report.
const (
	MinImages = 1
	MaxImages = 5
)

// Report represents a community issue report
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ResidentID  primitive.ObjectID `bson:"residentId" json:"residentId"`
	Title       string             `bson:"title" json:"title"`
	Category    Category           `bson:"category" json:"category"`
	Urgency     Urgency            `bson:"urgency" json:"urgency"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Description string             `bson:"description" json:"description"`
	Anonymous   bool               `bson:"anonymous" json:"anonymous"`
	Public      bool               `bson:"public" json:"public"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// ReportImage is one stored image belonging to a report. Position preserves
// the submission order and doubles as display order.
type ReportImage struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReportID primitive.ObjectID `bson:"reportId" json:"reportId"`
	URL      string             `bson:"url" json:"url"`
	PublicID string             `bson:"publicId" json:"-"`
	Position int                `bson:"position" json:"position"`
}

// CreateReportInput carries the parsed multipart fields of POST /reports.
type CreateReportInput struct {
	ResidentID  primitive.ObjectID
	Title       string
	Category    Category
	Urgency     Urgency
	Location    string
	Description string
	Anonymous   bool
	Public      bool
}

// ReportWithImages is a report plus its image URLs in display order.
type ReportWithImages struct {
	Report
	Images []string `json:"images"`
}
