package judge

import "context"

// HandleCallback applies an asynchronous verdict from the execution
// engine to the submission identified by the correlation token.
//
// Delivery is treated as at-least-once: a callback for a submission
// already in a terminal state is rejected and mutates nothing.
func (s *JudgeSrvc) HandleCallback(ctx context.Context, token string, statusID int, stdout string) (*Submission, error) {
	subm, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if subm == nil {
		return nil, newErrUnknownToken(token)
	}

	state, ok := StateFromStatusID(statusID)
	if !ok {
		return nil, newErrInvalidStatusCode(statusID)
	}

	if subm.State.IsTerminal() {
		return nil, newErrVerdictAlreadyRecorded(token)
	}

	subm.State = state
	if err := s.repo.Store(ctx, *subm); err != nil {
		return nil, err
	}

	s.logger.Info("verdict recorded",
		"subm_id", subm.ID, "token", token, "state", subm.State)

	return subm, nil
}
