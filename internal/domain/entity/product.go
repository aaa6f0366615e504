package entity

import "github.com/shopspring/decimal"

// Product artículo del catálogo. Las referencias a categoría y proveedor son
// opcionales (nil = sin asignar); el cliente no valida integridad referencial
// más allá de los guards de eliminación, eso lo garantiza el servidor.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int64          `json:"categoryId"`
	SupplierID  *int64          `json:"supplierId"`
}

// EntityID devuelve el id asignado por el servidor.
func (p Product) EntityID() int64 { return p.ID }

// StockTier nivel derivado del stock, solo para presentación.
type StockTier string

const (
	StockLow    StockTier = "low"
	StockMedium StockTier = "medium"
	StockHigh   StockTier = "high"
)

// Umbrales de nivel de stock (inclusivos).
const (
	stockLowMax    = 10
	stockMediumMax = 50
)

var stockTierLabels = map[StockTier]string{
	StockLow:    "Bajo",
	StockMedium: "Medio",
	StockHigh:   "Alto",
}

// Tier clasifica el stock actual: ≤10 bajo, ≤50 medio, >50 alto.
func (p Product) Tier() StockTier {
	switch {
	case p.Stock <= stockLowMax:
		return StockLow
	case p.Stock <= stockMediumMax:
		return StockMedium
	default:
		return StockHigh
	}
}

// Label etiqueta visible del nivel de stock.
func (t StockTier) Label() string {
	if l, ok := stockTierLabels[t]; ok {
		return l
	}
	return string(t)
}
