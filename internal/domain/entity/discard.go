package entity

import "time"

// Motivos de descarte.
const (
	DiscardReasonDamaged  = "damaged"
	DiscardReasonExpired  = "expired"
	DiscardReasonObsolete = "obsolete"
	DiscardReasonOther    = "other"
)

// DiscardRecord representa una baja definitiva de stock en una ubicación.
// El vínculo a un lote de adquisición es metadato informativo: el saldo por
// ubicación es la fuente de verdad, no el remanente del lote.
type DiscardRecord struct {
	ID               int64
	ItemID           int64
	LocationID       int64
	Quantity         int64
	Reason           string // damaged | expired | obsolete | other
	ProcurementLotID int64  // 0 = sin lote asociado
	Date             time.Time
	DiscardedBy      int64
	Notes            string
	CreatedAt        time.Time
}

// ValidDiscardReason valida el motivo de descarte.
func ValidDiscardReason(r string) bool {
	switch r {
	case DiscardReasonDamaged, DiscardReasonExpired, DiscardReasonObsolete, DiscardReasonOther:
		return true
	}
	return false
}
