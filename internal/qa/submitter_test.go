package qa

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSimulatedSubmitterWaitsAndDiscards(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.InfoLevel)
	sub := NewSimulatedSubmitter(20*time.Millisecond, zap.New(core))

	before := MockQuestions()
	start := time.Now()
	receipt, err := sub.SubmitAnswer(context.Background(), AnswerDraft{QuestionID: 1, Body: "Thanks!"})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, "answer", receipt.Kind)
	assert.NotEmpty(t, receipt.ID)
	assert.Equal(t, before, MockQuestions(), "submissions must not reach the fixture")

	entries := logs.FilterMessage("answer discarded").All()
	require.Len(t, entries, 1)
	assert.Equal(t, receipt.ID, entries[0].ContextMap()["receipt"])
}

func TestSimulatedSubmitterQuestion(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := NewSimulatedSubmitter(0, nil)
	receipt, err := sub.SubmitQuestion(context.Background(), QuestionDraft{Body: "Is an MBA worth it?", Category: CategoryCareerProgression})
	require.NoError(t, err)
	assert.Equal(t, "question", receipt.Kind)
	assert.False(t, receipt.SubmittedAt.IsZero())
}

func TestSimulatedSubmitterRejectsInvalidDrafts(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := NewSimulatedSubmitter(time.Hour, nil)
	_, err := sub.SubmitQuestion(context.Background(), QuestionDraft{Body: "  "})
	assert.ErrorIs(t, err, ErrIncompleteQuestion)

	_, err = sub.SubmitAnswer(context.Background(), AnswerDraft{QuestionID: 2})
	assert.ErrorIs(t, err, ErrEmptyAnswer)
}

func TestSimulatedSubmitterHonoursCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	sub := NewSimulatedSubmitter(time.Hour, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := sub.SubmitAnswer(ctx, AnswerDraft{QuestionID: 1, Body: "ok"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
