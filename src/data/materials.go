package data

import "gorm.io/gorm"

var seedMaterials = []Material{
	{Code: "steel-s45c", Name: "Carbon steel S45C", Density: 7.85},
	{Code: "steel-4140", Name: "Alloy steel SCM440", Density: 7.85},
	{Code: "sus-304", Name: "Stainless SUS304", Density: 7.93},
	{Code: "sus-316", Name: "Stainless SUS316", Density: 7.98},
	{Code: "alu-5052", Name: "Aluminium A5052", Density: 2.68},
	{Code: "alu-7075", Name: "Aluminium A7075", Density: 2.81},
	{Code: "brass-c3604", Name: "Free-cutting brass C3604", Density: 8.5},
	{Code: "copper-c1100", Name: "Tough pitch copper C1100", Density: 8.9},
}

// SeedMaterials inserts the default alloy catalog, leaving rows an operator
// already edited alone.
func SeedMaterials(db *gorm.DB) {
	for _, m := range seedMaterials {
		var existing Material
		if err := db.First(&existing, "code = ?", m.Code).Error; err == gorm.ErrRecordNotFound {
			db.Create(&Material{Code: m.Code, Name: m.Name, Density: m.Density})
		}
	}
}

// MaterialDensity looks a material up by code.
func MaterialDensity(db *gorm.DB, code string) (float64, bool) {
	var m Material
	if err := db.First(&m, "code = ?", code).Error; err != nil {
		return 0, false
	}
	return m.Density, true
}
