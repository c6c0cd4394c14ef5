package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/leanmaker/leanmaker/internal/pkg/mqx"
)

type SuspendedProducer mqx.Producer[StudentSuspendedEvent]

func NewSuspendedProducer(q mq.MQ) (SuspendedProducer, error) {
	return mqx.NewGeneralProducer[StudentSuspendedEvent](q, StudentSuspendedEventName)
}
