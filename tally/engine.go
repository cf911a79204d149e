package tally

import (
	"github.com/agoravote/agora/models"
	"github.com/agoravote/agora/topics"
	"github.com/agoravote/agora/votes"
)

// Engine derives aggregate counts and the outcome for a topic. It only
// reads; nothing here mutates state.
type Engine struct {
	topics *topics.Store
	votes  *votes.Ledger
}

func NewEngine(topics *topics.Store, votes *votes.Ledger) *Engine {
	return &Engine{topics: topics, votes: votes}
}

// Outcome classifies a count. The zero-vote case is a TIE, not an error.
func Outcome(yes, no int) string {
	switch {
	case yes > no:
		return models.OutcomeApproved
	case no > yes:
		return models.OutcomeRejected
	default:
		return models.OutcomeTie
	}
}

// ComputeResult assembles the tally for a topic. Results may be read at any
// status - a live tally while OPEN, the final one after CLOSED - but the
// outcome label is attached only once the topic is CLOSED.
func (e *Engine) ComputeResult(topicID string) (models.TallyResult, error) {
	topic, err := e.topics.Get(topicID)
	if err != nil {
		return models.TallyResult{}, err
	}

	yes, no, err := e.votes.Count(topicID)
	if err != nil {
		return models.TallyResult{}, err
	}

	result := models.TallyResult{
		TopicID:          topic.ID,
		TopicTitle:       topic.Title,
		TopicDescription: topic.Description,
		TopicStatus:      topic.Status,
		YesVotes:         yes,
		NoVotes:          no,
		TotalVotes:       yes + no,
		Results: map[string]int{
			models.ChoiceYes: yes,
			models.ChoiceNo:  no,
		},
	}
	if topic.Status == models.StatusClosed {
		result.Outcome = Outcome(yes, no)
	}

	return result, nil
}
