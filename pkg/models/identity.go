package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Identity is a user id that the service may send either as a JSON integer or
// as an opaque string. Both decode to the same string form.
type Identity string

func (id *Identity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = Identity(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identity must be a string or integer: %w", err)
	}
	if _, err := n.Int64(); err != nil {
		return fmt.Errorf("identity must be a string or integer, got %s", n)
	}
	*id = Identity(n.String())
	return nil
}

func (id Identity) String() string {
	return string(id)
}
