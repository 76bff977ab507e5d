// Package suspense renders a region of a page that shows fallback markup
// until its data is ready.
//
// A load starts as soon as Defer is called, usually before the handler
// renders anything, so it overlaps with rendering of the document head and
// layout. Boundary then decides how to deliver the result:
//
//   - streaming: the fallback is written and flushed, the boundary waits
//     for the load, and the resolved markup follows in a <template> with a
//     small inline script that swaps it in place of the fallback.
//   - blocking: used when the writer cannot flush or when streaming is
//     disabled on the context. Only the resolved markup is written and a
//     load error is returned from Render, before any of the boundary is
//     written.
//
// Once streaming the response is already committed, so a load error is
// logged and replaced by the error notice instead of aborting the page.
package suspense

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/a-h/templ"

	"github.com/testingfly/website/logger"
)

// ErrInvalidID is returned when a boundary id cannot be used as an HTML id
// and JavaScript string literal without escaping.
var ErrInvalidID = errors.New("suspense: invalid boundary id")

var reID = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Loader produces the content of a boundary.
type Loader func(ctx context.Context) (templ.Component, error)

// Deferred is the pending result of a Loader.
type Deferred struct {
	done chan struct{}
	cmp  templ.Component
	err  error
}

// Defer starts load in its own goroutine and returns immediately.
func Defer(ctx context.Context, load Loader) *Deferred {
	d := &Deferred{done: make(chan struct{})}
	go func() {
		defer close(d.done)
		defer func() {
			if r := recover(); r != nil {
				d.cmp, d.err = nil, fmt.Errorf("suspense: loader panic: %v", r)
			}
		}()
		d.cmp, d.err = load(ctx)
	}()
	return d
}

// Resolved returns a Deferred that is already complete with cmp.
func Resolved(cmp templ.Component) *Deferred {
	d := &Deferred{done: make(chan struct{}), cmp: cmp}
	close(d.done)
	return d
}

// Ready reports whether the load has finished.
func (d *Deferred) Ready() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the load finishes or ctx is done.
func (d *Deferred) Wait(ctx context.Context) (templ.Component, error) {
	select {
	case <-d.done:
		return d.cmp, d.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type streamingKey struct{}

// WithStreaming enables or disables streamed boundaries for renders using
// ctx. Streaming is enabled when nothing was set.
func WithStreaming(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, streamingKey{}, enabled)
}

// Streaming reports whether streamed boundaries are enabled on ctx.
func Streaming(ctx context.Context) bool {
	enabled, ok := ctx.Value(streamingKey{}).(bool)
	return !ok || enabled
}

// ErrorNotice is the default content shown in place of a streamed boundary
// whose load failed.
func ErrorNotice() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p role="alert" data-suspense="error">Something went wrong while loading this section. Please try again later.</p>`)
		return err
	})
}

// Boundary renders fallback until d resolves. id must be unique within the
// document; it becomes the id of the wrapping element. A streamed load
// error renders ErrorNotice.
func Boundary(id string, fallback templ.Component, d *Deferred) templ.Component {
	return BoundaryWithError(id, fallback, ErrorNotice(), d)
}

// BoundaryWithError is Boundary with a custom notice for streamed load
// errors.
func BoundaryWithError(id string, fallback, notice templ.Component, d *Deferred) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if !reID.MatchString(id) {
			return fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
		f, ok := w.(http.Flusher)
		if !ok || !Streaming(ctx) {
			return renderResolved(ctx, w, id, d)
		}
		if d.Ready() {
			return renderReady(ctx, w, id, notice, d)
		}
		return renderStreamed(ctx, w, f, id, fallback, notice, d)
	})
}

func renderResolved(ctx context.Context, w io.Writer, id string, d *Deferred) error {
	cmp, err := d.Wait(ctx)
	if err != nil {
		return err
	}
	return writeResolved(ctx, w, id, cmp)
}

// renderReady writes an already finished load in place, falling back to
// notice when it failed.
func renderReady(ctx context.Context, w io.Writer, id string, notice templ.Component, d *Deferred) error {
	cmp, err := d.Wait(ctx)
	if err != nil {
		logLoadError(ctx, id, err)
		cmp = notice
	}
	return writeResolved(ctx, w, id, cmp)
}

func writeResolved(ctx context.Context, w io.Writer, id string, cmp templ.Component) error {
	if _, err := fmt.Fprintf(w, `<div id="%s" data-suspense="resolved">`, id); err != nil {
		return err
	}
	if err := renderOptional(ctx, w, cmp); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</div>")
	return err
}

func renderStreamed(ctx context.Context, w io.Writer, f http.Flusher, id string, fallback, notice templ.Component, d *Deferred) error {
	if _, err := fmt.Fprintf(w, `<div id="%s" data-suspense="pending">`, id); err != nil {
		return err
	}
	if err := renderOptional(ctx, w, fallback); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</div>"); err != nil {
		return err
	}
	f.Flush()

	cmp, err := d.Wait(ctx)
	if err != nil {
		// the client is gone; nothing left to swap
		if ctx.Err() != nil {
			return err
		}
		logLoadError(ctx, id, err)
		cmp = notice
	}
	if _, err := fmt.Fprintf(w, `<template id="%s-resolved">`, id); err != nil {
		return err
	}
	if err := renderOptional(ctx, w, cmp); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "</template><script>"+swapScript(id)+"</script>"); err != nil {
		return err
	}
	f.Flush()
	return nil
}

func logLoadError(ctx context.Context, id string, err error) {
	logger.FromContext(ctx).Error().Err(err).Str("boundary", id).Msg("deferred load failed after streaming started")
}

func renderOptional(ctx context.Context, w io.Writer, cmp templ.Component) error {
	if cmp == nil {
		return nil
	}
	return cmp.Render(ctx, w)
}

// swapScript replaces the pending element with the template content and
// removes both the template and itself.
func swapScript(id string) string {
	return fmt.Sprintf(`(function(){var p=document.getElementById("%[1]s"),t=document.getElementById("%[1]s-resolved");`+
		`if(p&&t){var r=document.createElement("div");r.id="%[1]s";r.setAttribute("data-suspense","resolved");`+
		`r.appendChild(t.content.cloneNode(true));p.replaceWith(r);t.remove();}`+
		`var s=document.currentScript;if(s){s.remove();}})();`, id)
}
