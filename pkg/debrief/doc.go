// Package debrief implements the interview debrief form: the field set, the
// declarative rule table, validation of a Draft into a Feedback bundle, and
// the Controller that tracks one form session from mount to submit.
//
// A typical session:
//
//	form := debrief.New(debrief.WithLogger(logger))
//	_ = form.SetField(debrief.FieldCandidateNextStep, "yes")
//	_ = form.SetField(debrief.FieldFeedback, "Strong systems design answers.")
//	bundle, err := form.Submit(ctx)
//	if errs, ok := debrief.AsFieldErrors(err); ok {
//		// render errs next to each field
//	}
//
// Rendering layers (HTML, terminal) live in pkg/renderers and only talk to the
// Controller; they never validate on their own.
package debrief
