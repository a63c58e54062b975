// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Reserved words that cannot be used as tenant or location slugs
var reservedSlugs = map[string]bool{
	"admin": true, "api": true, "www": true, "internal": true,
	"public": true, "health": true, "stats": true,
	"tenants": true, "locations": true, "users": true, "links": true,
}

// ValidateSlug checks a slug against the URL-safe pattern and reserved words.
func ValidateSlug(slug string) bool {
	if slug == "" || len(slug) > 50 {
		return false
	}
	if reservedSlugs[strings.ToLower(slug)] {
		return false
	}
	if strings.HasPrefix(slug, "-") || strings.HasSuffix(slug, "-") {
		return false
	}
	return slugPattern.MatchString(slug)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
var collapseDashes = regexp.MustCompile(`[-\s]+`)

// Slugify converts a display name to a URL-friendly slug.
func Slugify(text string) string {
	text = strings.ToLower(text)
	text = nonSlugChars.ReplaceAllString(text, "")
	text = collapseDashes.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}
