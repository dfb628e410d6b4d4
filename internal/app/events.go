package app

import (
	"time"

	"github.com/printarts/printrec/internal/domain"
	"github.com/printarts/printrec/pkg/common"
	"go.uber.org/zap"
)

// Catalog mutation events published on the application bus. The audit
// subscriber records them in sys_opr_log; failures are logged, never surfaced.
const (
	EventProductCreated = "catalog.product.created"
	EventProductUpdated = "catalog.product.updated"
	EventProductDeleted = "catalog.product.deleted"
	EventImageChanged   = "catalog.image.changed"
)

func (a *Application) initEvents() {
	for _, topic := range []string{
		EventProductCreated,
		EventProductUpdated,
		EventProductDeleted,
		EventImageChanged,
	} {
		if err := a.bus.Subscribe(topic, a.onCatalogEvent(topic)); err != nil {
			zap.L().Error("failed to subscribe audit handler", zap.String("topic", topic), zap.Error(err))
		}
	}
}

func (a *Application) onCatalogEvent(topic string) func(oprName, desc string) {
	return func(oprName, desc string) {
		if err := a.gormDB.Create(&domain.SysOprLog{
			ID:        common.UUIDint64(),
			OprName:   oprName,
			OptAction: topic,
			OptDesc:   desc,
			OptTime:   time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to write audit log", zap.String("topic", topic), zap.Error(err))
		}
	}
}

// PublishEvent publishes a catalog event for the audit trail.
func (a *Application) PublishEvent(topic, oprName, desc string) {
	if a.bus == nil {
		return
	}
	a.bus.Publish(topic, oprName, desc)
}
