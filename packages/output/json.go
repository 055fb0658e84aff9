package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/ycurl/packages/core/runner"
)

// JSONOutput is the machine-readable form of one invocation.
type JSONOutput struct {
	ID       string        `json:"id"`
	Index    int           `json:"index"`
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Error    string        `json:"error,omitempty"`
	Request  *JSONRequest  `json:"request,omitempty"`
	Response *JSONResponse `json:"response,omitempty"`
	Time     string        `json:"time"`
}

// JSONRequest represents request details
type JSONRequest struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Body    json.RawMessage   `json:"body,omitempty"`
}

// JSONResponse represents response details
type JSONResponse struct {
	StatusCode int               `json:"statusCode"`
	Status     string            `json:"status"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       any               `json:"body,omitempty"`
	Duration   float64           `json:"duration"`
}

// JSONFormatter writes results as indented JSON.
type JSONFormatter struct {
	writer io.Writer
	now    func() time.Time
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatResult(result *runner.Result) {
	_ = f.Encode(result)
}

// Encode writes result, reporting write errors.
func (f *JSONFormatter) Encode(result *runner.Result) error {
	out := JSONOutput{
		ID:     result.ID,
		Index:  result.Index,
		Name:   result.Name,
		Passed: result.Passed(),
		Time:   f.now().Format(time.RFC3339),
	}

	if result.Error != nil {
		out.Error = result.Error.Error()
	}

	if r := result.Request; r != nil {
		out.Request = &JSONRequest{
			Method:  r.Method,
			URL:     r.BuildURL(),
			Headers: r.Headers,
		}
		if json.Valid(r.Body) {
			out.Request.Body = r.Body
		}
	}

	if r := result.Response; r != nil {
		out.Response = &JSONResponse{
			StatusCode: r.StatusCode,
			Status:     r.Status,
			Headers:    r.HeaderMap(),
			Duration:   float64(r.Duration.Milliseconds()),
		}
		if r.IsJSON() {
			out.Response.Body = json.RawMessage(r.Body)
		} else if len(r.Body) > 0 {
			out.Response.Body = r.BodyString()
		}
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func (f *JSONFormatter) FormatError(err error) {
	encoder := json.NewEncoder(f.writer)
	_ = encoder.Encode(map[string]string{"error": err.Error()})
}

func (f *JSONFormatter) FormatHeader(version string) {
	// No header needed for JSON output
}
