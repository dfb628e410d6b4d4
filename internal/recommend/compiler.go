package recommend

import "github.com/printarts/printrec/internal/domain"

// MethodDetail is one compiled per-method record.
type MethodDetail struct {
	Method         string  `json:"method"`
	MethodKey      string  `json:"method_key"`
	ColorLimit     *string `json:"color_limit"`
	Available      bool    `json:"available"`
	Notes          *string `json:"notes"`
	ProductionTime *string `json:"production_time"`
	MethodImage    *string `json:"method_image"`
}

// Recommendation is the display ready structure for one product: the product
// itself plus one detail per registry method, in registry order.
type Recommendation struct {
	Product *domain.Product `json:"product"`
	Methods []MethodDetail  `json:"methods"`
}

// Compile builds the full per-method list for one product row. Unavailable
// methods are included with available=false and every derived field nil; a
// stray stored note, production time line or method image must never surface
// for an unavailable method.
func Compile(p *domain.Product) *Recommendation {
	methods := make([]MethodDetail, 0, len(registry))
	for _, m := range registry {
		raw, _ := p.CapabilityField(m.Key)
		capa := ParseCapability(raw)

		detail := MethodDetail{
			Method:    m.Name,
			MethodKey: m.Key,
			Available: capa.Available(),
		}
		if capa.Available() {
			if capa.ColorLimit != "" {
				detail.ColorLimit = strptr(capa.ColorLimit)
			}
			if capa.Note != "" {
				detail.Notes = strptr(capa.Note)
			}
			if line := MatchProductionTime(p.ProductionTime, m); line != "" {
				detail.ProductionTime = strptr(line)
			}
			if img, _ := p.MethodImage(m.Key); img != nil {
				detail.MethodImage = strptr(*img)
			}
		}
		methods = append(methods, detail)
	}
	return &Recommendation{Product: p, Methods: methods}
}

func strptr(s string) *string {
	return &s
}
