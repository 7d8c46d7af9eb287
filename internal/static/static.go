package static

import _ "embed"

// APIMd contains the embedded HTTP API reference.
//
//go:embed api.md
var APIMd string
