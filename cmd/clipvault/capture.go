package main

import (
	"fmt"

	"github.com/fwojciec/clipvault"
	"github.com/fwojciec/clipvault/capture"
)

// Run executes the capture command.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 1 {
		result, err := deps.Capturer.Capture(deps.Ctx, c.request(c.URLs[0]))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clipvault.ErrorMessage(err))
			return err
		}
		printResult(deps, result)
		return nil
	}

	reqs := make([]capture.Request, len(c.URLs))
	for i, u := range c.URLs {
		reqs[i] = c.request(u)
	}

	results, err := deps.Capturer.CaptureAll(deps.Ctx, reqs, func(ev capture.ProgressEvent) {
		switch ev.Type {
		case capture.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] failed %s: %s\n", ev.Completed, ev.Total, ev.URL, clipvault.ErrorMessage(ev.Error))
		case capture.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "[%d/%d] skipped duplicate %s\n", ev.Completed, ev.Total, ev.URL)
		case capture.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] captured %s\n", ev.Completed, ev.Total, ev.URL)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipvault.ErrorMessage(err))
		return err
	}

	var failed int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
		case !r.Duplicate:
			printResult(deps, r)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d captures failed", failed, len(results))
	}
	return nil
}

func (c *CaptureCmd) request(url string) capture.Request {
	return capture.Request{
		URL:      url,
		What:     c.What,
		Who:      c.Who,
		Why:      c.Why,
		Markdown: c.Markdown,
	}
}

// printResult writes where the note went, or its URI when nothing was saved.
func printResult(deps *Dependencies, r *capture.Result) {
	if r.URL != "" && r.Article == nil && r.Video == nil {
		fmt.Fprintf(deps.Stderr, "warning: no content extracted from %s\n", r.URL)
	}
	if r.Path != "" {
		fmt.Fprintf(deps.Stdout, "Saved %s\n", r.Path)
		return
	}
	fmt.Fprintln(deps.Stdout, r.URI)
}

// Run executes the note command.
func (c *NoteCmd) Run(deps *Dependencies) error {
	result, err := deps.Capturer.Capture(deps.Ctx, capture.Request{
		What: c.What,
		Who:  c.Who,
		Why:  c.Why,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipvault.ErrorMessage(err))
		return err
	}
	printResult(deps, result)
	return nil
}
