package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de adquisición.
const (
	ProcurementTypePurchase   = "purchase"
	ProcurementTypeDonation   = "donation"
	ProcurementTypeTransferIn = "transfer-in"
)

// Tipos de documento soporte de la adquisición.
const (
	DocumentTypePurchaseOrder = "Purchase Order"
	DocumentTypeMOU           = "MOU"
	DocumentTypeInternalMemo  = "Internal Memo"
)

// ProcurementLot representa un lote de adquisición: el evento que crea stock
// en una ubicación destino. Cantidad y destino son inmutables tras la creación;
// corregirlos retroactivamente corrompería los saldos derivados.
type ProcurementLot struct {
	ID                    int64
	ItemID                int64
	Type                  string // purchase | donation | transfer-in
	Supplier              string
	Quantity              int64
	UnitPrice             decimal.Decimal
	Date                  time.Time
	DocumentType          string // opcional
	Notes                 string
	RecordedBy            int64
	DestinationLocationID int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TotalPrice siempre se deriva de cantidad × precio unitario; nunca se almacena.
func (p *ProcurementLot) TotalPrice() decimal.Decimal {
	return decimal.NewFromInt(p.Quantity).Mul(p.UnitPrice)
}

// ValidProcurementType valida el tipo de adquisición.
func ValidProcurementType(t string) bool {
	switch t {
	case ProcurementTypePurchase, ProcurementTypeDonation, ProcurementTypeTransferIn:
		return true
	}
	return false
}
