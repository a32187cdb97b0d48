package partials

import "encoding/json"

// jsonString encodes a value as a JSON string literal for hx-vals payloads,
// so skill names with quotes or backslashes survive the round trip.
func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
