package entities

import (
	"bytes"
	"encoding/json"

	"github.com/assetforge/halfscale/internal/errors"
)

var jsonNull = []byte("null")

// decodeObject unmarshals data into a raw field map, rejecting anything that
// is not a JSON object. Field order is insignificant; unknown fields are
// ignored.
func decodeObject(data []byte, object string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument,
			"%s must be a JSON object", object)
	}
	return raw, nil
}

// decodeField unmarshals a required field into target. A missing, null, or
// mistyped field is a decode error carrying the field name in metadata.
func decodeField(raw map[string]json.RawMessage, object, field string, target interface{}) error {
	msg, ok := raw[field]
	if !ok {
		return errors.InvalidArgumentf("%s: missing required field %q", object, field).
			WithMeta("field", field)
	}
	if bytes.Equal(msg, jsonNull) {
		return errors.InvalidArgumentf("%s: required field %q must not be null", object, field).
			WithMeta("field", field)
	}
	if err := json.Unmarshal(msg, target); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument,
			"%s: invalid field %q", object, field).
			WithMeta("field", field)
	}
	return nil
}
