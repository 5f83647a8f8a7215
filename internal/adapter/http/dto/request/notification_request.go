package request

import "ordenes_taller/internal/domain/entities"

// NotificationsQuery selects the bell entries for a user, a role, or both.
type NotificationsQuery struct {
	UserID string `form:"usuario_id"`
	Role   string `form:"rol"`
}

func (q NotificationsQuery) ResolveRole() entities.Role {
	return entities.Role(q.Role)
}
