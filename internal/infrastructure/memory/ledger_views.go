package memory

import (
	"sort"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Las vistas operan sobre un ledgerTables sin tomar el mutex: dentro de una
// transacción el runner ya lo tiene, y fuera las envuelven los repos con lock.

type balanceView struct {
	t *ledgerTables
	s *Store // solo lectura de items para el reporte de stock bajo
}

func (v *balanceView) Get(itemID, locationID int64) (*entity.StockBalance, error) {
	if b, ok := v.t.balances[balKey{itemID, locationID}]; ok {
		cp := *b
		return &cp, nil
	}
	return &entity.StockBalance{ItemID: itemID, LocationID: locationID}, nil
}

// GetForUpdate equivale a Get: el mutex global ya excluye a cualquier otra
// transacción.
func (v *balanceView) GetForUpdate(itemID, locationID int64) (*entity.StockBalance, error) {
	return v.Get(itemID, locationID)
}

func (v *balanceView) Upsert(balance *entity.StockBalance) error {
	cp := *balance
	cp.UpdatedAt = time.Now()
	v.t.balances[balKey{balance.ItemID, balance.LocationID}] = &cp
	return nil
}

func (v *balanceView) TotalByItem(itemID int64) (int64, error) {
	var total int64
	for k, b := range v.t.balances {
		if k.itemID == itemID {
			total += b.Quantity
		}
	}
	return total, nil
}

func (v *balanceView) TotalByLocation(locationID int64) (int64, error) {
	var total int64
	for k, b := range v.t.balances {
		if k.locationID == locationID {
			total += b.Quantity
		}
	}
	return total, nil
}

func (v *balanceView) ListByItem(itemID int64) ([]*entity.StockBalance, error) {
	var list []*entity.StockBalance
	for k, b := range v.t.balances {
		if k.itemID == itemID {
			cp := *b
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].LocationID < list[j].LocationID })
	return list, nil
}

func (v *balanceView) ListByLocation(locationID int64) ([]*entity.StockBalance, error) {
	var list []*entity.StockBalance
	for k, b := range v.t.balances {
		if k.locationID == locationID {
			cp := *b
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ItemID < list[j].ItemID })
	return list, nil
}

func (v *balanceView) ListBelowThreshold() ([]*entity.LowStockItem, error) {
	var list []*entity.LowStockItem
	for _, it := range v.s.items {
		if it.LowStockThreshold <= 0 {
			continue
		}
		total, _ := v.TotalByItem(it.ID)
		if total < it.LowStockThreshold {
			list = append(list, &entity.LowStockItem{
				ItemID:    it.ID,
				ItemName:  it.Name,
				Threshold: it.LowStockThreshold,
				Total:     total,
			})
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ItemName < list[j].ItemName })
	return list, nil
}

type movementView struct {
	t *ledgerTables
}

func (v *movementView) Create(m *entity.StockMovement) error {
	v.t.nextMovementID++
	m.ID = v.t.nextMovementID
	cp := *m
	v.t.movements[m.ID] = &cp
	return nil
}

func (v *movementView) GetByID(id int64) (*entity.StockMovement, error) {
	if m, ok := v.t.movements[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (v *movementView) List(limit, offset int) ([]*entity.StockMovement, error) {
	all := make([]*entity.StockMovement, 0, len(v.t.movements))
	for _, m := range v.t.movements {
		cp := *m
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return page(all, limit, offset), nil
}

func (v *movementView) ListByItem(itemID int64) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range v.t.movements {
		if m.ItemID == itemID {
			cp := *m
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (v *movementView) CountSince(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	var n int64
	for _, m := range v.t.movements {
		if !m.CreatedAt.Before(cutoff) {
			n++
		}
	}
	return n, nil
}

type procurementView struct {
	t *ledgerTables
}

func (v *procurementView) Create(lot *entity.ProcurementLot) error {
	v.t.nextLotID++
	lot.ID = v.t.nextLotID
	cp := *lot
	v.t.lots[lot.ID] = &cp
	return nil
}

func (v *procurementView) GetByID(id int64) (*entity.ProcurementLot, error) {
	if l, ok := v.t.lots[id]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (v *procurementView) Update(lot *entity.ProcurementLot) error {
	cp := *lot
	v.t.lots[lot.ID] = &cp
	return nil
}

func (v *procurementView) List(limit, offset int) ([]*entity.ProcurementLot, error) {
	all := make([]*entity.ProcurementLot, 0, len(v.t.lots))
	for _, l := range v.t.lots {
		cp := *l
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return page(all, limit, offset), nil
}

func (v *procurementView) ListByItem(itemID int64) ([]*entity.ProcurementLot, error) {
	var list []*entity.ProcurementLot
	for _, l := range v.t.lots {
		if l.ItemID == itemID {
			cp := *l
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

type discardView struct {
	t *ledgerTables
}

func (v *discardView) Create(rec *entity.DiscardRecord) error {
	v.t.nextDiscardID++
	rec.ID = v.t.nextDiscardID
	cp := *rec
	v.t.discards[rec.ID] = &cp
	return nil
}

func (v *discardView) GetByID(id int64) (*entity.DiscardRecord, error) {
	if d, ok := v.t.discards[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (v *discardView) List(limit, offset int) ([]*entity.DiscardRecord, error) {
	all := make([]*entity.DiscardRecord, 0, len(v.t.discards))
	for _, d := range v.t.discards {
		cp := *d
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return page(all, limit, offset), nil
}

type requestView struct {
	t *ledgerTables
}

func (v *requestView) Create(req *entity.StockRequest) error {
	v.t.nextRequestID++
	req.ID = v.t.nextRequestID
	cp := *req
	v.t.requests[req.ID] = &cp
	return nil
}

func (v *requestView) GetByID(id int64) (*entity.StockRequest, error) {
	if r, ok := v.t.requests[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (v *requestView) GetByIDForUpdate(id int64) (*entity.StockRequest, error) {
	return v.GetByID(id)
}

func (v *requestView) Update(req *entity.StockRequest) error {
	cp := *req
	v.t.requests[req.ID] = &cp
	return nil
}

func (v *requestView) List(status string, limit, offset int) ([]*entity.StockRequest, error) {
	var list []*entity.StockRequest
	for _, r := range v.t.requests {
		if status == "" || r.Status == status {
			cp := *r
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return page(list, limit, offset), nil
}

func (v *requestView) ListByUser(userID int64, limit, offset int) ([]*entity.StockRequest, error) {
	var list []*entity.StockRequest
	for _, r := range v.t.requests {
		if r.RequestedBy == userID {
			cp := *r
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return page(list, limit, offset), nil
}

func (v *requestView) CountByStatus(status string) (int64, error) {
	var n int64
	for _, r := range v.t.requests {
		if r.Status == status {
			n++
		}
	}
	return n, nil
}

// page aplica limit/offset a una lista ya ordenada.
func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
