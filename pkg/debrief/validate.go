package debrief

// Validate applies the default rule table to d. Every field is checked in a
// single pass; on success the returned errors are nil and the bundle carries
// the draft values with defaults applied.
func Validate(d Draft) (Feedback, FieldErrors) {
	return validate(Rules(), d)
}

func validate(rules []FieldRule, d Draft) (Feedback, FieldErrors) {
	var errs FieldErrors
	resolved := make(map[FieldName]any, len(rules))

	for _, rule := range rules {
		value, set := d.Value(rule.Field)
		if msg, ok := ValidateField(rule, value, set); !ok {
			if errs == nil {
				errs = make(FieldErrors)
			}
			errs[rule.Field] = msg
			continue
		}
		if !set {
			value = rule.Default
		}
		resolved[rule.Field] = value
	}

	if len(errs) > 0 {
		return Feedback{}, errs
	}
	return bundleFrom(resolved), nil
}

func bundleFrom(values map[FieldName]any) Feedback {
	var f Feedback
	f.CandidateNextStep, _ = values[FieldCandidateNextStep].(Choice)
	f.PotentialOffer, _ = values[FieldPotentialOffer].(Choice)
	f.NextInterviewerName, _ = values[FieldNextInterviewerName].(string)
	f.UnselectedInterviewer, _ = values[FieldUnselectedInterviewer].(bool)
	f.ApproveNextInterviewRound, _ = values[FieldApproveNextInterviewRound].(bool)
	f.Feedback, _ = values[FieldFeedback].(string)
	return f
}
