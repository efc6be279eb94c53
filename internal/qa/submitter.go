package qa

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSubmitDelay is how long the simulated backend takes to accept a
// submission.
const DefaultSubmitDelay = time.Second

// Receipt acknowledges an accepted submission.
type Receipt struct {
	ID          string
	Kind        string
	SubmittedAt time.Time
}

// Submitter accepts questions and answers. The only implementation today is
// SimulatedSubmitter; a real backend plugs in here.
type Submitter interface {
	SubmitQuestion(ctx context.Context, draft QuestionDraft) (Receipt, error)
	SubmitAnswer(ctx context.Context, draft AnswerDraft) (Receipt, error)
}

// SimulatedSubmitter waits for Delay and then discards the submission. The
// question set is never touched.
type SimulatedSubmitter struct {
	Delay  time.Duration
	Logger *zap.Logger
}

// NewSimulatedSubmitter returns a submitter that sleeps for delay. A nil
// logger is replaced with a no-op logger.
func NewSimulatedSubmitter(delay time.Duration, logger *zap.Logger) *SimulatedSubmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedSubmitter{Delay: delay, Logger: logger}
}

func (s *SimulatedSubmitter) SubmitQuestion(ctx context.Context, draft QuestionDraft) (Receipt, error) {
	if err := draft.Validate(); err != nil {
		return Receipt{}, err
	}
	if err := s.wait(ctx); err != nil {
		return Receipt{}, err
	}
	receipt := newReceipt("question")
	s.logger().Info("question discarded",
		zap.String("receipt", receipt.ID),
		zap.String("category", draft.Category.String()),
		zap.Int("chars", len([]rune(draft.Body))),
	)
	return receipt, nil
}

func (s *SimulatedSubmitter) SubmitAnswer(ctx context.Context, draft AnswerDraft) (Receipt, error) {
	if err := draft.Validate(); err != nil {
		return Receipt{}, err
	}
	if err := s.wait(ctx); err != nil {
		return Receipt{}, err
	}
	receipt := newReceipt("answer")
	s.logger().Info("answer discarded",
		zap.String("receipt", receipt.ID),
		zap.Int("question", draft.QuestionID),
		zap.Int("chars", len([]rune(draft.Body))),
	)
	return receipt, nil
}

func (s *SimulatedSubmitter) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *SimulatedSubmitter) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func newReceipt(kind string) Receipt {
	return Receipt{
		ID:          uuid.NewString(),
		Kind:        kind,
		SubmittedAt: time.Now(),
	}
}
