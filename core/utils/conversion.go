package utils

import (
	"fmt"
	"strconv"
)

// ToInt leniently parses a wire value as an int. Manifest attributes
// arrive as strings; an absent or garbage value becomes zero rather
// than an error, matching how the upstream treats them.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	case []byte:
		i, _ := strconv.Atoi(string(v))
		return i
	default:
		i, _ := strconv.Atoi(fmt.Sprintf("%v", v))
		return i
	}
}
