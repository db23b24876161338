package data

import "time"

// Material is a bar stock alloy in the catalog. Density is specific gravity
// in g/cm³.
type Material struct {
	ID      uint64  `gorm:"primaryKey" json:"id"`
	Code    string  `gorm:"size:32;uniqueIndex;not null" json:"code"`
	Name    string  `gorm:"size:128;not null" json:"name"`
	Density float64 `gorm:"not null" json:"density"`
}

// Movement is one recorded stock movement of a bar stock item.
type Movement struct {
	ID           uint64    `gorm:"primaryKey" json:"-"`
	UUID         string    `gorm:"size:36;uniqueIndex;not null" json:"id"`
	MaterialCode string    `gorm:"size:32;index;not null" json:"material"`
	Shape        string    `gorm:"size:16;not null" json:"shape"`
	DiameterMm   float64   `json:"diameterMm"`
	LengthMm     float64   `json:"lengthMm"`
	WeightKg     float64   `json:"weightKg"`
	Type         string    `gorm:"size:16;index;not null" json:"type"` // receive|issue|return|move|adjust
	Note         string    `gorm:"size:255" json:"note,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Setting is a named tunable loaded into the settings cache at startup.
type Setting struct {
	ID    uint8  `gorm:"primaryKey"`
	Name  string `gorm:"size:50;uniqueIndex"`
	Value string `gorm:"size:255"`
}
