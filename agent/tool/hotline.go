package tool

import "strings"

// Directory is the hotline-lookup collaborator. Lookup is pure and total:
// a recognized region returns its curated contacts, anything else returns
// the fixed generic mapping. It never fails.
type Directory struct{}

func NewDirectory() Directory {
	return Directory{}
}

func (Directory) Lookup(region string) map[string]string {
	switch strings.ToLower(strings.TrimSpace(region)) {
	case "india", "in":
		return map[string]string{
			"general_emergency":   "112",
			"disaster_management": "108",
		}
	default:
		return map[string]string{
			"general_emergency":   "911/112 (depending on your country)",
			"disaster_management": "Check your local government's disaster helpline.",
		}
	}
}
