package domain

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// PageContext is the host page a bar is evaluated against. Empty fields skip their gate.
type PageContext struct {
	Host string
	Path string
}

// Gate names the client-side check that stops a bar from mounting.
type Gate string

const (
	GateNone   Gate = ""
	GateDomain Gate = "domain"
	GatePath   Gate = "path"
)

// PageGate returns the first client-side gate that would stop the bar on page,
// in the order the embed script runs them.
func (a *Announcement) PageGate(page PageContext) Gate {
	if page.Host != "" && !a.DomainAllowed(page.Host) {
		return GateDomain
	}
	if page.Path != "" && !a.PathAllowed(page.Path) {
		return GatePath
	}
	return GateNone
}

// NormalizeHost lower-cases a hostname and strips one leading "www.".
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}

// DomainAllowed reports whether the bar may render on the given page hostname.
// Only the page hostname has "www." stripped.
func (a *Announcement) DomainAllowed(hostname string) bool {
	if a.AllowedDomain == "" {
		return true
	}
	return NormalizeHost(hostname) == strings.ToLower(a.AllowedDomain)
}

// PathAllowed reports whether the page path contains at least one configured entry.
func (a *Announcement) PathAllowed(path string) bool {
	if len(a.PagePaths) == 0 {
		return true
	}
	for _, p := range a.PagePaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// CountryAllowed reports whether a visitor from the ISO country code may see the bar.
func (a *Announcement) CountryAllowed(code string) bool {
	if len(a.GeoCountries) == 0 {
		return true
	}
	allowed := mapset.NewThreadUnsafeSet[string]()
	for _, c := range a.GeoCountries {
		allowed.Add(strings.ToUpper(c))
	}
	return allowed.Contains(strings.ToUpper(strings.TrimSpace(code)))
}
