package audit

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Event es lo que reciben los suscriptores: la entrada persistida más metadatos
// volátiles para decidir el enrutamiento (ids de destinatarios, nombres). Los
// metadatos no se almacenan en la bitácora.
type Event struct {
	Entry *entity.AuditEntry
	Meta  map[string]string
}

// Subscriber consume eventos de bitácora (despachador de notificaciones,
// publicador Redis). Los suscriptores nunca escriben en la bitácora.
type Subscriber interface {
	OnAudit(ev Event)
}

// Recorder es la bitácora de la aplicación: anexa entradas inmutables y las
// reparte a los suscriptores. La escritura ocurre después de que la operación
// de negocio quedó confirmada; si la bitácora falla se registra el error y la
// operación de negocio se reporta igual al llamador (log-then-continue).
type Recorder struct {
	repo repository.AuditRepository
	log  *logger.Logger
	subs []Subscriber
}

// NewRecorder construye la bitácora.
func NewRecorder(repo repository.AuditRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Subscribe registra un consumidor de eventos. No es seguro llamarlo después
// de poner el servicio a recibir tráfico.
func (r *Recorder) Subscribe(s Subscriber) {
	r.subs = append(r.subs, s)
}

// Record anexa una entrada sin metadatos.
func (r *Recorder) Record(actionType, entityType string, entityID, performedBy int64, details string) {
	r.RecordWithMeta(actionType, entityType, entityID, performedBy, details, nil)
}

// RecordWithMeta anexa una entrada y notifica a los suscriptores con los
// metadatos dados. Un fallo de escritura se loguea y no se propaga.
func (r *Recorder) RecordWithMeta(actionType, entityType string, entityID, performedBy int64, details string, meta map[string]string) {
	entry := &entity.AuditEntry{
		ActionType:  actionType,
		EntityType:  entityType,
		EntityID:    entityID,
		PerformedBy: performedBy,
		Timestamp:   time.Now(),
		Details:     details,
	}
	if err := r.repo.Append(entry); err != nil {
		r.log.Error().Err(err).
			Str("action", actionType).
			Str("entity", entityType).
			Int64("entity_id", entityID).
			Msg("fallo al escribir en la bitácora")
		return
	}
	ev := Event{Entry: entry, Meta: meta}
	for _, s := range r.subs {
		s.OnAudit(ev)
	}
}

// List consulta la bitácora con filtros y paginación.
func (r *Recorder) List(filter repository.AuditFilter, limit, offset int) ([]*entity.AuditEntry, int64, error) {
	entries, err := r.repo.List(filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.repo.Count(filter)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
