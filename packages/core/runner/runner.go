package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/abdul-hamid-achik/ycurl/packages/core/config"
	"github.com/abdul-hamid-achik/ycurl/packages/history"
	"github.com/abdul-hamid-achik/ycurl/packages/http"
)

type Runner struct {
	client *http.Client
	config *Config
}

type Config struct {
	// Options are the effective options, document cli_options already merged
	// with command line flags.
	Options *config.Options
	// File is the document path, stored with history entries.
	File      string
	UserAgent string
	// Log and Store are optional sinks.
	Log   *history.Log
	Store *history.Store
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	opts := config.DefaultOptions().Merge(cfg.Options)

	clientOpts := []http.ClientOption{
		http.WithFollowRedirects(!opts.GetDisableRedirect()),
	}
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, http.WithTimeout(time.Duration(opts.Timeout)*time.Millisecond))
	}
	if opts.MaxRedirects > 0 {
		clientOpts = append(clientOpts, http.WithMaxRedirects(opts.MaxRedirects))
	}
	if cfg.UserAgent != "" {
		clientOpts = append(clientOpts, http.WithUserAgent(cfg.UserAgent))
	}

	return &Runner{
		client: http.NewClient(clientOpts...),
		config: cfg,
	}
}

// Result describes one executed request. Request is set as soon as the
// request was built; Response only when the server answered.
type Result struct {
	ID       string
	Index    int
	Name     string
	Request  *http.Request
	Response *http.Response
	Duration time.Duration
	Error    error
}

// Passed reports whether the server answered with a 2xx status.
func (r *Result) Passed() bool {
	return r.Error == nil && r.Response != nil && r.Response.IsSuccess()
}

// Run selects the request named by key and sends it. Selection and build
// errors are returned before anything is written to the history sinks. A
// transport failure returns both the partial result and the error.
func (r *Runner) Run(ctx context.Context, cfg *config.Config, key string) (*Result, error) {
	entry, err := cfg.Select(key)
	if err != nil {
		return nil, err
	}

	req, err := http.BuildRequest(cfg, entry.Request)
	if err != nil {
		return nil, fmt.Errorf("building request %q: %w", entry.Request.Name, err)
	}

	result := &Result{
		ID:      uuid.NewString(),
		Index:   entry.Index,
		Name:    entry.Request.Name,
		Request: req,
	}

	started := r.config.Now()
	begin := time.Now()
	if r.config.Log != nil {
		r.config.Log.Begin(started, result.ID)
		r.config.Log.Request(req)
	}

	resp, err := r.client.Do(ctx, req)
	result.Duration = time.Since(begin)
	if err != nil {
		result.Error = err
		if r.config.Log != nil {
			r.config.Log.Failure(err)
		}
		r.record(ctx, started, result)
		return result, err
	}

	result.Response = resp
	result.Duration = resp.Duration
	if r.config.Log != nil {
		r.config.Log.Response(resp)
	}
	r.record(ctx, started, result)

	return result, nil
}

// RunFile loads the document at path and runs the request named by key.
func (r *Runner) RunFile(ctx context.Context, path, key string, opts ...config.LoadOption) (*Result, error) {
	cfg, err := config.Load(path, opts...)
	if err != nil {
		return nil, err
	}
	if r.config.File == "" {
		r.config.File = path
	}
	return r.Run(ctx, cfg, key)
}

func (r *Runner) record(ctx context.Context, at time.Time, result *Result) {
	if r.config.Store == nil {
		return
	}

	entry := &history.Entry{
		ID:         result.ID,
		CreatedAt:  at,
		File:       r.config.File,
		Name:       result.Name,
		Method:     result.Request.Method,
		URL:        result.Request.BuildURL(),
		DurationMs: result.Duration.Milliseconds(),
	}
	if result.Response != nil {
		entry.StatusCode = result.Response.StatusCode
	}
	if result.Error != nil {
		entry.Error = result.Error.Error()
	}

	if err := r.config.Store.Record(ctx, entry); err != nil {
		log.WithFields(log.Fields{"id": result.ID, "err": err}).Warn("Recording request history")
	}
}
