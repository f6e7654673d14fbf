package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DateParams holds parsed year/month/day values from request parameters.
type DateParams struct {
	Year  int
	Month int
	Day   int
}

// ParseDateParams extracts year, month and day from form values, using the
// current date for anything absent or unparseable.
func ParseDateParams(form url.Values) DateParams {
	now := time.Now()
	params := DateParams{
		Year:  now.Year(),
		Month: int(now.Month()),
		Day:   now.Day(),
	}

	if v := strings.TrimSpace(form.Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			params.Year = y
		}
	}
	if v := strings.TrimSpace(form.Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			params.Month = m
		}
	}
	if v := strings.TrimSpace(form.Get("day")); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			params.Day = d
		}
	}

	return params
}

// RequireMethod checks the request method, returning an error response
// builder when it does not match.
func RequireMethod(r *http.Request, methods ...string) *HTMXResponseBuilder {
	for _, m := range methods {
		if r.Method == m {
			return nil
		}
	}
	return MethodNotAllowedError(strings.Join(methods, ", "))
}

// RequirePOST is a convenience for POST-only handlers.
func RequirePOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodPost)
}

// RequireGET is a convenience for GET-only handlers.
func RequireGET(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodGet)
}

// ParseFormOrFail parses the request form, returning an error response on
// failure and nil on success.
func ParseFormOrFail(r *http.Request) *HTMXResponseBuilder {
	if err := r.ParseForm(); err != nil {
		return BadRequestError("Invalid request format")
	}
	return nil
}

// sanitizeInput trims whitespace and strips control characters except tab,
// newline and carriage return.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
