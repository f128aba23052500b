// Package redisbus publica los eventos de bitácora en un canal de Redis para
// que sistemas externos (dashboards, integraciones) los consuman en vivo.
package redisbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

var _ audit.Subscriber = (*Publisher)(nil)

// Publisher es un suscriptor de la bitácora que publica cada evento como JSON
// en un canal Pub/Sub. Un fallo de publicación solo se loguea: el bus es
// mejor-esfuerzo y nunca afecta la operación de negocio.
type Publisher struct {
	client  *redis.Client
	channel string
	log     *logger.Logger
}

// NewPublisher conecta el cliente y verifica la conexión con un ping.
func NewPublisher(addr, password string, db int, channel string, log *logger.Logger) (*Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Publisher{client: client, channel: channel, log: log}, nil
}

// auditMessage es el formato publicado en el canal.
type auditMessage struct {
	ID          int64             `json:"id"`
	ActionType  string            `json:"actionType"`
	EntityType  string            `json:"entityType"`
	EntityID    int64             `json:"entityId"`
	PerformedBy int64             `json:"performedBy"`
	Timestamp   time.Time         `json:"timestamp"`
	Details     string            `json:"details,omitempty"`
	Meta        map[string]string `json:"meta,omitempty"`
}

// OnAudit publica el evento; implementa audit.Subscriber.
func (p *Publisher) OnAudit(ev audit.Event) {
	msg := auditMessage{
		ID:          ev.Entry.ID,
		ActionType:  ev.Entry.ActionType,
		EntityType:  ev.Entry.EntityType,
		EntityID:    ev.Entry.EntityID,
		PerformedBy: ev.Entry.PerformedBy,
		Timestamp:   ev.Entry.Timestamp,
		Details:     ev.Entry.Details,
		Meta:        ev.Meta,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		p.log.Error().Err(err).Msg("fallo al serializar evento de bitácora")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.log.Error().Err(err).Str("channel", p.channel).Msg("fallo al publicar evento de bitácora")
	}
}

// Close cierra el cliente Redis.
func (p *Publisher) Close() error {
	return p.client.Close()
}
