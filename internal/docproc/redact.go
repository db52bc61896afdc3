package docproc

import (
	"regexp"
	"strings"
)

// Redactor is the optional PII-redaction capability. Implementations replace
// detected spans with bracketed placeholder tokens ([EMAIL], [PHONE],
// [NAME], [LOCATION]). Redaction is best-effort: callers must treat a
// failure as "return the original text", never as a fatal error.
type Redactor interface {
	Redact(text string) (string, error)
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	// Phone numbers with at least 7 digits, tolerating separators and a
	// country prefix.
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[\s\-.]?)?(\(?\d{2,4}\)?[\s\-.]?)?\d{3}[\s\-.]?\d{4}\d*`)
)

// RegexRedactor redacts the deterministic PII subset (e-mail addresses and
// phone numbers). Person names and locations need an NER-capable Redactor;
// when none is injected they are left in place.
type RegexRedactor struct {
	allowlist map[string]bool
}

// NewRegexRedactor builds a redactor. Allowlisted tokens (e.g. the
// platform's own domain in contact addresses) are exempt from redaction.
func NewRegexRedactor(allowlist []string) *RegexRedactor {
	allowed := make(map[string]bool, len(allowlist))
	for _, token := range allowlist {
		allowed[strings.ToLower(strings.TrimSpace(token))] = true
	}
	return &RegexRedactor{allowlist: allowed}
}

// Redact replaces e-mail addresses with [EMAIL] and phone numbers with
// [PHONE].
func (r *RegexRedactor) Redact(text string) (string, error) {
	text = emailPattern.ReplaceAllStringFunc(text, func(match string) string {
		if r.allowed(match) {
			return match
		}
		return "[EMAIL]"
	})
	text = phonePattern.ReplaceAllStringFunc(text, func(match string) string {
		if r.allowed(match) || !plausiblePhone(match) {
			return match
		}
		return "[PHONE]"
	})
	return text, nil
}

func (r *RegexRedactor) allowed(match string) bool {
	if r.allowlist[strings.ToLower(strings.TrimSpace(match))] {
		return true
	}
	// An address is also exempt when its domain is allowlisted.
	if at := strings.LastIndex(match, "@"); at >= 0 {
		return r.allowlist[strings.ToLower(match[at+1:])]
	}
	return false
}

// plausiblePhone guards the broad phone pattern against years and other
// short digit runs.
func plausiblePhone(match string) bool {
	digits := 0
	for _, c := range match {
		if c >= '0' && c <= '9' {
			digits++
		}
	}
	return digits >= 7
}
