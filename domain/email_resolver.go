package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// emailPattern matches addresses the resolver is willing to hand out
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// DomainEmailResolver derives customer email addresses of the form
// first.last@domain from registration input. Inputs that cannot produce a
// well-formed address resolve to nothing.
type DomainEmailResolver struct {
	Domain string
}

var _ EmailResolver = (*DomainEmailResolver)(nil)

// NewDomainEmailResolver creates a resolver for the given mail domain
func NewDomainEmailResolver(domain string) *DomainEmailResolver {
	return &DomainEmailResolver{Domain: domain}
}

// Resolve returns the derived address, or the empty string when either name
// part is blank or the derivation is not a well-formed address
func (r *DomainEmailResolver) Resolve(input CustomerInput) string {
	first := strings.ToLower(strings.TrimSpace(input.FirstName))
	last := strings.ToLower(strings.TrimSpace(input.LastName))
	if first == "" || last == "" {
		return ""
	}

	address := fmt.Sprintf("%s.%s@%s", first, last, r.Domain)
	if !emailPattern.MatchString(address) {
		return ""
	}

	return address
}

// TryResolve returns the derived address together with a success flag
func (r *DomainEmailResolver) TryResolve(input CustomerInput) (string, bool) {
	address := r.Resolve(input)
	return address, address != ""
}
