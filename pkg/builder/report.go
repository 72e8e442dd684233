package builder

import (
	"github.com/hashicorp/go-multierror"

	"github.com/goliatone/go-sitegen/pkg/config"
)

// Result records the outcome of one template render.
type Result struct {
	Template string
	// Path is where the output landed when the render succeeded.
	Path string
	Err  error
}

// Report summarises a build: the merged configuration shared by every
// render, plus one Result per requested template in request order.
type Report struct {
	Config  config.Configuration
	Results []Result
}

// Failed returns the results that did not produce output.
func (r Report) Failed() []Result {
	var failed []Result
	for _, result := range r.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}
	return failed
}

// Err aggregates every per-template failure, or nil when the build was
// clean.
func (r Report) Err() error {
	var errs *multierror.Error
	for _, result := range r.Results {
		if result.Err != nil {
			errs = multierror.Append(errs, result.Err)
		}
	}
	return errs.ErrorOrNil()
}
