package http

import (
	"net/url"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/ycurl/packages/core/config"
	"github.com/abdul-hamid-achik/ycurl/packages/core/value"
)

// Param is one query string pair. Pairs keep document order and a key may
// repeat when the document gives an array.
type Param struct {
	Key   string
	Value string
}

type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Params  []Param
	Body    []byte
	Timeout time.Duration
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:  method,
		URL:     requestURL,
		Headers: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

func (r *Request) SetTimeout(d time.Duration) *Request {
	r.Timeout = d
	return r
}

func (r *Request) AddParam(key, value string) *Request {
	r.Params = append(r.Params, Param{Key: key, Value: value})
	return r
}

// Header looks a header up case-insensitively.
func (r *Request) Header(key string) (string, bool) {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// Query encodes the params in order, without the leading '?'.
func (r *Request) Query() string {
	parts := make([]string, 0, len(r.Params))
	for _, p := range r.Params {
		parts = append(parts, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}
	return strings.Join(parts, "&")
}

// BuildURL returns the URL with the encoded params appended.
func (r *Request) BuildURL() string {
	if len(r.Params) == 0 {
		return r.URL
	}
	sep := "?"
	if strings.Contains(r.URL, "?") {
		sep = "&"
	}
	return r.URL + sep + r.Query()
}

// BuildRequest turns a resolved request into something the client can send.
// The URL is joined to the base URL and must come out absolute; default
// headers are merged under the request's own, params become query pairs and
// the body is sent as indented JSON.
func BuildRequest(cfg *config.Config, req *config.Request) (*Request, error) {
	r := NewRequest(string(req.Method), cfg.URLFor(req))
	if err := ValidateURL(r.URL); err != nil {
		return nil, err
	}

	for k, v := range cfg.HeadersFor(req) {
		r.SetHeader(k, v)
	}

	req.Params.Range(func(key string, v value.Value) bool {
		if v.Kind() == value.Array {
			for _, item := range v.Items() {
				r.AddParam(key, item.Text())
			}
			return true
		}
		r.AddParam(key, v.Text())
		return true
	})

	if req.Body != nil {
		body, err := value.MarshalIndent(value.NewObject(req.Body), "  ")
		if err != nil {
			return nil, err
		}
		r.SetBody(body)
		if _, ok := r.Header("Content-Type"); !ok {
			r.SetHeader("Content-Type", "application/json")
		}
	}

	return r, nil
}
