package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/leanmaker/leanmaker/internal/pkg/mqx"
)

type WorkHourVerifiedProducer mqx.Producer[WorkHourVerifiedEvent]

func NewWorkHourVerifiedProducer(q mq.MQ) (WorkHourVerifiedProducer, error) {
	return mqx.NewGeneralProducer[WorkHourVerifiedEvent](q, WorkHourVerifiedEventName)
}
