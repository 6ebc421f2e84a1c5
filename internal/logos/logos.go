// Package logos derives team logo URLs from display names.
package logos

import "strings"

// DefaultBaseURL points at the upstream site's team logo assets.
const DefaultBaseURL = "https://squiggle.com.au/wp-content/themes/squiggle/assets/images/logos/"

// URL builds a deterministic logo URL for a team name: lower-cased,
// "&" replaced with "and", spaces collapsed to hyphens, ".svg" suffix.
func URL(baseURL, teamName string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return baseURL + Slug(teamName) + ".svg"
}

// Slug converts a team display name into its logo file stem.
func Slug(teamName string) string {
	name := strings.ToLower(strings.TrimSpace(teamName))
	name = strings.ReplaceAll(name, "&", "and")
	fields := strings.Fields(name)
	return strings.Join(fields, "-")
}
