package json

import (
	"encoding/json"

	"github.com/tidwall/pretty"
)

func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// MarshalIndent marshals v and reformats the result for human reading.
func MarshalIndent(v interface{}) ([]byte, error) {
	bytes, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(bytes), nil
}
