package models

// Hall represents a bookable seminar hall.
type Hall struct {
	ID       string `bson:"id" json:"id"` // Unique hall identifier (e.g., UUID)
	Name     string `bson:"name" json:"name"`
	Capacity int    `bson:"capacity" json:"capacity"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Active   bool   `bson:"active" json:"active"`
}

// HallRef is the embedded hall reference some historical seminar records
// carry instead of flat hallName/hallId fields.
type HallRef struct {
	ID   string `bson:"id,omitempty" json:"id,omitempty"`
	Name string `bson:"name,omitempty" json:"name,omitempty"`
}
