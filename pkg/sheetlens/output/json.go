// Package output renders inspection results for consumers.
package output

import "encoding/json"

// ToJSON marshals v, optionally indented for human reading.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
