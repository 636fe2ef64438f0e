package utils

import (
	"encoding/json"
	"fmt"
)

// ConvertString renders any value for log metadata.
func ConvertString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	case []byte:
		return string(v)
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(data)
	}
}
