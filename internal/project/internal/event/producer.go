package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/leanmaker/leanmaker/internal/pkg/mqx"
)

type StateChangedProducer mqx.Producer[ProjectStateChangedEvent]

func NewStateChangedProducer(q mq.MQ) (StateChangedProducer, error) {
	return mqx.NewGeneralProducer[ProjectStateChangedEvent](q, ProjectStateChangedEventName)
}

type RepairedProducer mqx.Producer[ProjectRepairedEvent]

func NewRepairedProducer(q mq.MQ) (RepairedProducer, error) {
	return mqx.NewGeneralProducer[ProjectRepairedEvent](q, ProjectRepairedEventName)
}
