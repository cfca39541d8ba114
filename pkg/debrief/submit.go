package debrief

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Submitter receives validated bundles.
type Submitter interface {
	Submit(ctx context.Context, feedback Feedback) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, feedback Feedback) error

func (fn SubmitterFunc) Submit(ctx context.Context, feedback Feedback) error {
	return fn(ctx, feedback)
}

// LogSubmitter writes the bundle to a logger. It stands in for the network
// call that would deliver the debrief to a backend.
type LogSubmitter struct {
	logger *zap.Logger
}

// NewLogSubmitter returns a submitter logging at info level. A nil logger
// discards output.
func NewLogSubmitter(logger *zap.Logger) *LogSubmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSubmitter{logger: logger}
}

func (s *LogSubmitter) Submit(ctx context.Context, feedback Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("debrief submitted", zap.Object("debrief", feedback))
	return nil
}

// MarshalLogObject lets zap encode the bundle field by field.
func (f Feedback) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString(string(FieldCandidateNextStep), string(f.CandidateNextStep))
	enc.AddString(string(FieldPotentialOffer), string(f.PotentialOffer))
	enc.AddString(string(FieldNextInterviewerName), f.NextInterviewerName)
	enc.AddBool(string(FieldUnselectedInterviewer), f.UnselectedInterviewer)
	enc.AddBool(string(FieldApproveNextInterviewRound), f.ApproveNextInterviewRound)
	enc.AddString(string(FieldFeedback), f.Feedback)
	return nil
}
