package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/leanmaker/leanmaker/internal/pkg/mqx"
)

type CompletedProducer mqx.Producer[EvaluationCompletedEvent]

func NewCompletedProducer(q mq.MQ) (CompletedProducer, error) {
	return mqx.NewGeneralProducer[EvaluationCompletedEvent](q, EvaluationCompletedEventName)
}

type RecomputedProducer mqx.Producer[RatingRecomputedEvent]

func NewRecomputedProducer(q mq.MQ) (RecomputedProducer, error) {
	return mqx.NewGeneralProducer[RatingRecomputedEvent](q, RatingRecomputedEventName)
}
