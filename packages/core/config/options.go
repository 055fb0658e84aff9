package config

// Options controls how ycurl sends a request and prints the result. A
// document may carry them under "cli_options"; command line flags are merged
// on top.
type Options struct {
	ShowHeaders     *bool  `json:"show_headers,omitempty"`
	Verbose         *bool  `json:"verbose,omitempty"`
	DisableRedirect *bool  `json:"disable_redirect,omitempty"`
	NoColor         *bool  `json:"no_color,omitempty"`
	Timeout         int    `json:"timeout,omitempty"`       // milliseconds
	MaxRedirects    int    `json:"max_redirects,omitempty"`
	LogFile         string `json:"log_file,omitempty"`
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// DefaultOptions returns the options used when neither the document nor the
// command line sets a value.
func DefaultOptions() *Options {
	return &Options{
		ShowHeaders:     BoolPtr(false),
		Verbose:         BoolPtr(false),
		DisableRedirect: BoolPtr(false),
		NoColor:         BoolPtr(false),
		Timeout:         30000, // 30 seconds
		MaxRedirects:    10,
	}
}

func (o *Options) GetShowHeaders() bool {
	return o != nil && getBool(o.ShowHeaders, false)
}

func (o *Options) GetVerbose() bool {
	return o != nil && getBool(o.Verbose, false)
}

func (o *Options) GetDisableRedirect() bool {
	return o != nil && getBool(o.DisableRedirect, false)
}

func (o *Options) GetNoColor() bool {
	return o != nil && getBool(o.NoColor, false)
}

// Merge merges another set of options into this one, with other taking
// precedence. Unset fields in other leave the receiver's value in place.
func (o *Options) Merge(other *Options) *Options {
	if o == nil {
		o = &Options{}
	}
	if other == nil {
		result := *o
		return &result
	}

	result := *o // Copy

	if other.Timeout > 0 {
		result.Timeout = other.Timeout
	}
	if other.MaxRedirects > 0 {
		result.MaxRedirects = other.MaxRedirects
	}
	if other.LogFile != "" {
		result.LogFile = other.LogFile
	}

	// Boolean flags - only override if explicitly set in other
	if other.ShowHeaders != nil {
		result.ShowHeaders = other.ShowHeaders
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}
	if other.DisableRedirect != nil {
		result.DisableRedirect = other.DisableRedirect
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}
