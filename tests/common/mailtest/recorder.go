//go:build unit || e2e

// Package mailtest records relayed submissions in memory so tests can
// assert on delivery without an SMTP server.
package mailtest

import (
	"context"
	"sync"

	"siteforms/internal/infra/mailer"
)

type Recorder struct {
	mu   sync.Mutex
	sent []mailer.Submission
	err  error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Send(_ context.Context, sub mailer.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, sub)
	return nil
}

func (r *Recorder) Sent() []mailer.Submission {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]mailer.Submission, len(r.sent))
	copy(out, r.sent)
	return out
}

// FailWith makes every following Send return err; nil restores delivery.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
	r.err = nil
}
