package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/leanmaker/leanmaker/internal/pkg/mqx"
)

type AcceptedProducer mqx.Producer[ApplicationAcceptedEvent]

func NewAcceptedProducer(q mq.MQ) (AcceptedProducer, error) {
	return mqx.NewGeneralProducer[ApplicationAcceptedEvent](q, ApplicationAcceptedEventName)
}
