package forms

import (
	"context"
	"errors"
)

// FallbackCreateError is shown when the remote failure carries no detail.
const FallbackCreateError = "Failed to create competition"

// CreateResult is what the remote create operation returns on success.
type CreateResult struct {
	Slug string
}

// CreateClient issues the remote create call. Implementations decide
// transport and timeouts; the controller issues exactly one call per valid
// submit and never retries.
type CreateClient interface {
	CreateCompetition(ctx context.Context, draft CompetitionDraft) (CreateResult, error)
}

// Navigator moves the user to the created competition's detail location.
type Navigator interface {
	NavigateToCompetition(slug string)
}

// RemoteError is a create failure with a server-provided detail message.
type RemoteError struct {
	Detail string
}

func (e *RemoteError) Error() string {
	if e.Detail == "" {
		return "create competition failed"
	}
	return e.Detail
}

// SubmissionController runs the submit protocol for the competition form.
// Single page instance, single logical thread: the caller serializes Submit
// with field edits, and disables the trigger whenever Loading is true or the
// form is invalid.
//
// States: idle -> submitting -> navigated away on success, or back to idle
// with an error on failure. Resubmission after failure is a fresh Submit.
type SubmissionController struct {
	client CreateClient
	nav    Navigator

	loading bool
	errMsg  string
}

func NewSubmissionController(client CreateClient, nav Navigator) *SubmissionController {
	return &SubmissionController{client: client, nav: nav}
}

// Loading reports whether a submit is in flight (or has succeeded and the
// page is navigating away).
func (s *SubmissionController) Loading() bool {
	return s.loading
}

// Error returns the message from the last failed submit, empty otherwise.
// Loading and a non-empty Error are never set at the same time.
func (s *SubmissionController) Error() string {
	return s.errMsg
}

// Submit validates the form and, when valid, issues the create call.
// An invalid form or an in-flight submit is a no-op: no remote call and no
// change to Loading or Error. Returns true only when the create succeeded
// and navigation was triggered.
func (s *SubmissionController) Submit(ctx context.Context, form FormState) bool {
	if s.loading {
		return false
	}
	if !Validate(form).Valid() {
		return false
	}

	s.loading = true
	s.errMsg = ""

	result, err := s.client.CreateCompetition(ctx, BuildDraft(form))
	if err != nil {
		s.loading = false
		s.errMsg = detailOf(err)
		return false
	}

	// Stay busy through navigation so the trigger cannot fire again while
	// the page is being torn down.
	s.nav.NavigateToCompetition(result.Slug)
	return true
}

func detailOf(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) && remote.Detail != "" {
		return remote.Detail
	}
	return FallbackCreateError
}
