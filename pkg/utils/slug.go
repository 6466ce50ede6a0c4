package utils

import (
	"math/rand"
	"regexp"
	"strings"
	"time"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

const slugCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

var slugRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// Slugify derives a URL path segment from a gallery title: lowercase, runs of
// anything outside [a-z0-9] collapse to a single hyphen, edges trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = randomSlug(10)
	}
	return slug
}

// randomSlug covers titles with no usable characters at all.
func randomSlug(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = slugCharset[slugRand.Intn(len(slugCharset))]
	}
	return string(b)
}
