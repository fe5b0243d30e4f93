package export

import "regexp"

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// SanitizeName collapses every run of non-alphanumeric characters into a
// single underscore, making user-entered titles safe as file names.
func SanitizeName(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
