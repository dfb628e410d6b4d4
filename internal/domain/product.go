package domain

import "time"

// Product is one promotional product row. Each method field holds the raw
// capability string as imported from the legacy spreadsheet ("NA", "Multi",
// "2 (Prices may vary)", free text); the strings are stored verbatim and only
// interpreted at read time by the recommend package.
type Product struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"index;not null" json:"name" form:"name"`
	Category        string `gorm:"index;not null" json:"category" form:"category"`
	Material        string `json:"material" form:"material"`
	ScreenPrinting  string `gorm:"column:screen_printing" json:"screen_printing" form:"screen_printing"`
	UvPrinting      string `gorm:"column:uv_printing" json:"uv_printing" form:"uv_printing"`
	OffsetPrinting  string `gorm:"column:offset_printing" json:"offset_printing" form:"offset_printing"`
	DigitalPrinting string `gorm:"column:digital_printing" json:"digital_printing" form:"digital_printing"`
	LaserEngraving  string `gorm:"column:laser_engraving" json:"laser_engraving" form:"laser_engraving"`
	DtgDtf          string `gorm:"column:dtg_dtf" json:"dtg_dtf" form:"dtg_dtf"`
	Embroidery      string `json:"embroidery" form:"embroidery"`
	Sublimation     string `json:"sublimation" form:"sublimation"`
	// ProductionTime holds one free text line per method, newline delimited.
	ProductionTime string `gorm:"column:production_time" json:"production_time" form:"production_time"`

	// Image slots: nil means no file associated. A method image may stay set
	// after the method field is cleared; the compiler suppresses it in output.
	Image                *string `json:"image"`
	ScreenPrintingImage  *string `gorm:"column:screen_printing_image" json:"screen_printing_image"`
	UvPrintingImage      *string `gorm:"column:uv_printing_image" json:"uv_printing_image"`
	OffsetPrintingImage  *string `gorm:"column:offset_printing_image" json:"offset_printing_image"`
	DigitalPrintingImage *string `gorm:"column:digital_printing_image" json:"digital_printing_image"`
	LaserEngravingImage  *string `gorm:"column:laser_engraving_image" json:"laser_engraving_image"`
	DtgDtfImage          *string `gorm:"column:dtg_dtf_image" json:"dtg_dtf_image"`
	EmbroideryImage      *string `gorm:"column:embroidery_image" json:"embroidery_image"`
	SublimationImage     *string `gorm:"column:sublimation_image" json:"sublimation_image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}

// CapabilityField returns the raw capability string for a method key.
func (p *Product) CapabilityField(key string) (string, bool) {
	switch key {
	case "screen_printing":
		return p.ScreenPrinting, true
	case "uv_printing":
		return p.UvPrinting, true
	case "offset_printing":
		return p.OffsetPrinting, true
	case "digital_printing":
		return p.DigitalPrinting, true
	case "laser_engraving":
		return p.LaserEngraving, true
	case "dtg_dtf":
		return p.DtgDtf, true
	case "embroidery":
		return p.Embroidery, true
	case "sublimation":
		return p.Sublimation, true
	}
	return "", false
}

// MethodImage returns the stored image filename for a method key, nil when
// no image is associated.
func (p *Product) MethodImage(key string) (*string, bool) {
	switch key {
	case "screen_printing":
		return p.ScreenPrintingImage, true
	case "uv_printing":
		return p.UvPrintingImage, true
	case "offset_printing":
		return p.OffsetPrintingImage, true
	case "digital_printing":
		return p.DigitalPrintingImage, true
	case "laser_engraving":
		return p.LaserEngravingImage, true
	case "dtg_dtf":
		return p.DtgDtfImage, true
	case "embroidery":
		return p.EmbroideryImage, true
	case "sublimation":
		return p.SublimationImage, true
	}
	return nil, false
}
