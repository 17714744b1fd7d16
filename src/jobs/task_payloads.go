package jobs

import (
	"encoding/json"

	"Backend-Brightlane-Leadkit/src/models"

	"github.com/hibiken/asynq"
)

// TypeDispatchLead delivers one submission to one sink.
const TypeDispatchLead = "lead:dispatch"

type DispatchLeadPayload struct {
	Sink       string            `json:"sink"`
	Submission models.Submission `json:"submission"`
}

func NewDispatchLeadTask(sink string, sub models.Submission) (*asynq.Task, error) {
	payload, err := json.Marshal(DispatchLeadPayload{Sink: sink, Submission: sub})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDispatchLead, payload), nil
}

// DispatchTaskID keeps a retried enqueue of the same submission/sink pair
// from producing a second task.
func DispatchTaskID(sink string, sub models.Submission) string {
	return "lead:" + sub.ID + ":" + sink
}
