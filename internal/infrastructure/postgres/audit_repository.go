package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL.
// La tabla es solo de anexado: no hay UPDATE ni DELETE en este adaptador y el
// ID monótono lo garantiza la secuencia BIGSERIAL.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de bitácora.
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append persiste una entrada y devuelve su ID asignado.
func (r *AuditRepo) Append(entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (action_type, entity_type, entity_id, performed_by, timestamp, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		entry.ActionType, entry.EntityType, entry.EntityID, entry.PerformedBy, entry.Timestamp, entry.Details,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// buildFilter arma el WHERE dinámico del listado. Los args empiezan en $1.
func buildFilter(filter repository.AuditFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.ActionType != "" {
		add("action_type = $%d", filter.ActionType)
	}
	if filter.EntityType != "" {
		add("entity_type = $%d", filter.EntityType)
	}
	if filter.From != nil {
		add("timestamp >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("timestamp <= $%d", *filter.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List lista entradas del más reciente al más antiguo según el filtro.
func (r *AuditRepo) List(filter repository.AuditFilter, limit, offset int) ([]*entity.AuditEntry, error) {
	where, args := buildFilter(filter)
	query := fmt.Sprintf(`
		SELECT id, action_type, entity_type, entity_id, performed_by, timestamp, details
		FROM audit_entries%s
		ORDER BY id DESC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.ActionType, &e.EntityType, &e.EntityID, &e.PerformedBy, &e.Timestamp, &e.Details); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Count cuenta las entradas que cumplen el filtro.
func (r *AuditRepo) Count(filter repository.AuditFilter) (int64, error) {
	where, args := buildFilter(filter)
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM audit_entries`+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count audit entries: %w", err)
	}
	return n, nil
}
