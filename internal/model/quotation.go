package model

import (
	"strconv"
	"strings"
)

// Quotation sheet column names. These match the published header row of the
// procurement spreadsheet verbatim, accents included.
const (
	ColQuotationDate = "Fecha y hora"
	ColDescription   = "Descripción del Producto - Resumida"
	ColProvider      = "Nombre del Proveedor"
	ColBrand         = "Marca del Componente"
	ColModel         = "Modelo del Componente"
	ColComponentType = "Tipo de Componente"
	ColMaterial      = "Material"
	ColDiameter      = "Diámetro"
	ColUnitPrice     = "Precio Unitario Neto en CLP"
	ColQuantity      = "Cantidad"
	ColTotalPrice    = "Precio Total Neto en CLP"
	ColDeliveryTerm  = "Plazo de entrega"
	ColImageLink     = "Link Imagen"
	ColPDFLink       = "Link archivo PDF"
	ColItemType      = "Tipo de item"
	ColFileName      = "Nombre del archivo"
)

// Quotation is the typed view of one procurement record. Numeric fields are
// parsed once here rather than re-parsed at every consumption site; the raw
// record is retained for full-text search and export.
type Quotation struct {
	Row Record

	Description   string
	Provider      string
	Brand         string
	Model         string
	ComponentType string
	Material      string
	Diameter      string
	ItemType      string
	DeliveryTerm  string
	Date          string
	UnitPrice     float64
	Quantity      float64
	TotalPrice    float64

	// SearchText is the lower-cased concatenation of every cell in header
	// order, computed once for free-text filtering.
	SearchText string
}

// NewQuotation builds the typed view of a record. Malformed numeric cells
// degrade to zero.
func NewQuotation(rec Record) Quotation {
	return Quotation{
		Row:           rec,
		Description:   rec[ColDescription],
		Provider:      rec[ColProvider],
		Brand:         rec[ColBrand],
		Model:         rec[ColModel],
		ComponentType: rec[ColComponentType],
		Material:      rec[ColMaterial],
		Diameter:      rec[ColDiameter],
		ItemType:      rec[ColItemType],
		DeliveryTerm:  rec[ColDeliveryTerm],
		Date:          rec[ColQuotationDate],
		UnitPrice:     ParsePrice(rec[ColUnitPrice]),
		Quantity:      ParsePrice(rec[ColQuantity]),
		TotalPrice:    ParsePrice(rec[ColTotalPrice]),
	}
}

// Quotations builds typed views for every record of a table.
func Quotations(t Table) []Quotation {
	rows := make([]Quotation, len(t.Records))
	for i, rec := range t.Records {
		rows[i] = NewQuotation(rec)
		rows[i].SearchText = strings.ToLower(rec.JoinedText(t.Header))
	}
	return rows
}

// ParsePrice interprets a cell as a float. Anything that does not parse,
// including the empty string and the sheet placeholders, degrades to 0.
func ParsePrice(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
