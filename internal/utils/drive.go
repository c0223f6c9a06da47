package utils

import "regexp"

var (
	driveLinkPattern = regexp.MustCompile(`^https://(drive|docs)\.google\.com/`)

	// tried in order; the first match wins
	driveIDPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`[?&]id=([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`/folders/([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`/document/d/([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`),
	}
)

// IsDriveLink reports whether link points at Google Drive or Docs
func IsDriveLink(link string) bool {
	return driveLinkPattern.MatchString(link)
}

// ExtractDriveFileID returns the file or folder id embedded in a Drive link
func ExtractDriveFileID(link string) (string, bool) {
	for _, pattern := range driveIDPatterns {
		if m := pattern.FindStringSubmatch(link); len(m) == 2 {
			return m[1], true
		}
	}
	return "", false
}
