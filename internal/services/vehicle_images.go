package services

import "strings"

// StockImageCatalog maps a vehicle type to a stock image URL used when a
// vehicle is created without its own photo. Lookups are case-insensitive and
// fall back to the "default" entry.
type StockImageCatalog map[string]string

// DefaultStockImages is the catalog served in production. The assets live on
// the shared Cloudinary account used by the mobile app.
func DefaultStockImages() StockImageCatalog {
	return StockImageCatalog{
		"hatchback":    "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046545/1_qgdrxu.png",
		"sedan":        "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046545/2_dsulb9.png",
		"truck":        "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046563/5_yuras8.png",
		"suv":          "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046562/3_kl0gid.png",
		"pickuptruck":  "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046564/4_z07sna.png",
		"stationwagon": "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046545/1_qgdrxu.png",
		"panelvan":     "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046563/6_bu2oqw.png",
		"coupe":        "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046568/8_qnnrch.png",
		"convertible":  "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046545/1_qgdrxu.png",
		"sportscar":    "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046563/7_klrskt.png",
		"supercar":     "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046566/9_aqabut.png",
		"default":      "https://res.cloudinary.com/dm5v9praz/image/upload/v1760046545/1_qgdrxu.png",
	}
}

// ImageFor resolves the stock image for a vehicle type.
func (c StockImageCatalog) ImageFor(vehicleType string) string {
	if url, ok := c[strings.ToLower(strings.TrimSpace(vehicleType))]; ok {
		return url
	}
	return c["default"]
}
