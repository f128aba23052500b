package memory

import (
	"sort"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var (
	_ repository.AuditRepository        = (*auditRepo)(nil)
	_ repository.NotificationRepository = (*notificationRepo)(nil)
)

type auditRepo struct {
	s *Store
}

func (r *auditRepo) Append(entry *entity.AuditEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextAuditID++
	entry.ID = r.s.nextAuditID
	cp := *entry
	r.s.audits = append(r.s.audits, &cp)
	return nil
}

func matches(e *entity.AuditEntry, f repository.AuditFilter) bool {
	if f.ActionType != "" && e.ActionType != f.ActionType {
		return false
	}
	if f.EntityType != "" && e.EntityType != f.EntityType {
		return false
	}
	if f.From != nil && e.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Timestamp.After(*f.To) {
		return false
	}
	return true
}

func (r *auditRepo) List(filter repository.AuditFilter, limit, offset int) ([]*entity.AuditEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.AuditEntry
	for _, e := range r.s.audits {
		if matches(e, filter) {
			cp := *e
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return page(list, limit, offset), nil
}

func (r *auditRepo) Count(filter repository.AuditFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, e := range r.s.audits {
		if matches(e, filter) {
			n++
		}
	}
	return n, nil
}

type notificationRepo struct {
	s *Store
}

func (r *notificationRepo) Create(n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextNotificationID++
	n.ID = r.s.nextNotificationID
	cp := *n
	r.s.notifications[n.ID] = &cp
	return nil
}

func (r *notificationRepo) ListByUser(userID int64, limit, offset int) ([]*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Notification
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			cp := *n
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return page(list, limit, offset), nil
}

func (r *notificationRepo) MarkRead(id, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if n, ok := r.s.notifications[id]; ok && n.UserID == userID {
		n.Read = true
	}
	return nil
}

func (r *notificationRepo) MarkAllRead(userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, n := range r.s.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *notificationRepo) CountUnread(userID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, note := range r.s.notifications {
		if note.UserID == userID && !note.Read {
			n++
		}
	}
	return n, nil
}
