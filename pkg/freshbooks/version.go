package freshbooks

// Version is the library version reported in the User-Agent header.
const Version = "0.3.0"

// DefaultUserAgent returns the User-Agent sent when none is configured.
func DefaultUserAgent() string {
	return "FreshBooks go sdk/" + Version
}
