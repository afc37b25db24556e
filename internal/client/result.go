package client

import "fmt"

// StatusKind classifies the outcome of one dispatched call.
type StatusKind string

const (
	StatusSuccess        StatusKind = "success"
	StatusHTTPError      StatusKind = "http_error"
	StatusTransportError StatusKind = "transport_error"
)

// Result is the typed outcome of a single request. Status is zero when the
// request never produced a response.
type Result struct {
	Kind   StatusKind
	Status int
	Detail string
	Err    error
}

func (r Result) OK() bool {
	return r.Kind == StatusSuccess
}

// String renders the failure the way progress lines print it: the status and
// body text for HTTP errors, the error text for transport faults.
func (r Result) String() string {
	switch r.Kind {
	case StatusSuccess:
		return fmt.Sprintf("%d", r.Status)
	case StatusHTTPError:
		return fmt.Sprintf("%d - %s", r.Status, r.Detail)
	default:
		return r.Detail
	}
}
