package contact

import "net/http"

// Response texts sent to the client.
const (
	MessageSuccess         = "Thank you for your message! We will get back to you shortly."
	MessageMissingFields   = "All fields (name, email, subject, message) are required."
	MessageProcessingError = "An error occurred while processing your request."
)

// Kind classifies how a submission ended.
type Kind int

const (
	Success Kind = iota
	ValidationFailure
	DeliveryFailure
	UnexpectedFailure
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case ValidationFailure:
		return "validation_failure"
	case DeliveryFailure:
		return "delivery_failure"
	case UnexpectedFailure:
		return "unexpected_failure"
	default:
		return "unknown"
	}
}

// Outcome is the result of handling one submission.
// Err is the internal cause; it is logged and never sent to the client.
type Outcome struct {
	Err     error
	Message string
	Kind    Kind
	Status  int
}

func succeeded() Outcome {
	return Outcome{Kind: Success, Status: http.StatusOK, Message: MessageSuccess}
}

func rejected(err error) Outcome {
	return Outcome{Kind: ValidationFailure, Status: http.StatusBadRequest, Message: MessageMissingFields, Err: err}
}

func failed(kind Kind, err error) Outcome {
	return Outcome{Kind: kind, Status: http.StatusInternalServerError, Message: MessageProcessingError, Err: err}
}
