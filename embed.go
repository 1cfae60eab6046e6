package dealdesk

import "embed"

// EmailFS carries the html/plaintext mail template pairs shipped with the
// binary.
//
//go:embed templates/emails
var EmailFS embed.FS
