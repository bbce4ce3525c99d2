package utils

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON safely marshals an object to JSON
func MarshalJSON(obj interface{}) ([]byte, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %v", err)
	}
	return data, nil
}

// UnmarshalJSON safely unmarshals JSON to an object
func UnmarshalJSON(data []byte, obj interface{}) error {
	if err := json.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %v", err)
	}
	return nil
}
