package notify

// Outcome is the result of one delivery attempt.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Skip reasons reported in DeliveryResult.Reason.
const (
	ReasonMissingResponsible = "missing responsible email"
	ReasonNoRecipients       = "no valid recipients"
	ReasonDryRun             = "dry run"
	ReasonPreview            = "preview"
)

// DeliveryResult records what happened to one batch.
type DeliveryResult struct {
	Key        Key
	Recipients []string
	Items      int
	Outcome    Outcome
	Reason     string
	Err        error
}

// Report summarises a run.
type Report struct {
	Overdue     int
	Groups      int
	Sent        int
	Skipped     int
	Failed      int
	Quarantined int
	NoDeadline  int
	Results     []DeliveryResult
}

func (r *Report) add(res DeliveryResult) {
	switch res.Outcome {
	case OutcomeSent:
		r.Sent++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
	r.Results = append(r.Results, res)
}

// Message is a rendered batch that was or would be delivered.
type Message struct {
	Key        Key
	Recipients []string
	Subject    string
	HTMLBody   string
	Items      int
}

// PreviewResult is returned by Service.Preview.
type PreviewResult struct {
	Report   Report
	Messages []Message
}
