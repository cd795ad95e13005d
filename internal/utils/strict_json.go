package utils

import (
	"bytes"
	"encoding/json"
)

// DecodeStrict unmarshals body into v and rejects any key v does not
// declare. PATCH endpoints use it to enforce their field whitelist before
// a single field is applied.
func DecodeStrict(body []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
