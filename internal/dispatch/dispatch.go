// Package dispatch runs projection and comparison requests off the caller's
// goroutine behind a simple request/response pair. Each request is an
// independent pure computation: it either completes with a payload or fails
// with a tagged error response; there are no partial results and no
// cancellation mid-computation. Callers issuing rapid repeat requests are
// responsible for their own debouncing.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/calculation"
	"github.com/kase1111-hash/Financial-Path-Visualizer/internal/domain"
)

// ErrClosed is returned by Submit once the dispatcher has been closed.
var ErrClosed = errors.New("dispatcher closed")

// Kind tags the request variants.
type Kind string

const (
	KindGenerate      Kind = "generate"
	KindGenerateQuick Kind = "generate_quick"
	KindCompare       Kind = "compare"
)

// Request is the tagged union of engine invocations.
type Request struct {
	Kind Kind `json:"kind"`

	// Generate / GenerateQuick.
	Profile *domain.Profile `json:"profile,omitempty"`
	Years   int             `json:"years,omitempty"`

	// Compare.
	Baseline  *domain.Trajectory `json:"baseline,omitempty"`
	Alternate *domain.Trajectory `json:"alternate,omitempty"`
	Changes   []domain.Change    `json:"changes,omitempty"`
	Name      string             `json:"name,omitempty"`
}

// Response carries either a success payload matching the request kind or an
// error message, never both.
type Response struct {
	Trajectory *domain.Trajectory `json:"trajectory,omitempty"`
	Comparison *domain.Comparison `json:"comparison,omitempty"`
	Err        string             `json:"error,omitempty"`
}

type job struct {
	req   Request
	reply chan Response
}

// Dispatcher owns a worker goroutine that serves requests sequentially.
type Dispatcher struct {
	engine *calculation.Engine
	jobs   chan job
	quit   chan struct{}
	done   chan struct{}
}

// New starts a dispatcher over the given engine.
func New(engine *calculation.Engine) *Dispatcher {
	d := &Dispatcher{
		engine: engine,
		jobs:   make(chan job),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for {
		select {
		case <-d.quit:
			return
		case j := <-d.jobs:
			j.reply <- d.serve(j.req)
		}
	}
}

// serve executes one request. Failures become tagged error responses; a
// panicking computation is reported the same way rather than crashing the
// worker.
func (d *Dispatcher) serve(req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{Err: fmt.Sprintf("computation panicked: %v", r)}
		}
	}()

	switch req.Kind {
	case KindGenerate:
		trajectory, err := d.engine.GenerateTrajectory(req.Profile)
		if err != nil {
			return Response{Err: err.Error()}
		}
		return Response{Trajectory: trajectory}
	case KindGenerateQuick:
		trajectory, err := d.engine.GenerateQuickTrajectory(req.Profile, req.Years)
		if err != nil {
			return Response{Err: err.Error()}
		}
		return Response{Trajectory: trajectory}
	case KindCompare:
		comparison, err := calculation.CompareTrajectories(req.Baseline, req.Alternate, req.Changes, req.Name)
		if err != nil {
			return Response{Err: err.Error()}
		}
		return Response{Comparison: comparison}
	default:
		return Response{Err: fmt.Sprintf("unknown request kind %q", req.Kind)}
	}
}

// Submit runs a request on the worker and waits for its response. The context
// bounds the wait, not the computation; an abandoned computation still
// finishes on the worker. Submit on a closed dispatcher returns ErrClosed.
func (d *Dispatcher) Submit(ctx context.Context, req Request) (Response, error) {
	reply := make(chan Response, 1)
	select {
	case d.jobs <- job{req: req, reply: reply}:
	case <-d.quit:
		return Response{}, ErrClosed
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}

	select {
	case resp := <-reply:
		return resp, nil
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

// Close stops the worker once any in-flight request finishes. Close must be
// called at most once.
func (d *Dispatcher) Close() {
	close(d.quit)
	<-d.done
}
