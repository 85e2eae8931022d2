package event

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"storefront/pkg/common/domain"
)

// LogDispatcher writes every domain event to the structured log.
type LogDispatcher struct{}

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Dispatch(e domain.Event) error {
	log.WithFields(log.Fields{
		"event":   e.Type(),
		"payload": fmt.Sprintf("%+v", e),
	}).Info("domain event")
	return nil
}
