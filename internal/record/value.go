package record

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

const bytesPreviewLen = 24

// Stringify renders a decoded value the way a table cell shows it: nil as an
// empty string, scalars verbatim, byte slices as a short base64 preview, and
// nested structures as compact JSON. Search matching and CSV cells share
// this representation.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case []byte:
		b64 := base64.StdEncoding.EncodeToString(t)
		if len(b64) > bytesPreviewLen {
			b64 = b64[:bytesPreviewLen]
		}
		return fmt.Sprintf("<bytes b64:%s...>", b64)
	default:
		b, err := json.Marshal(JSONSafe(v))
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// JSONSafe converts a decoded value into a form encoding/json can represent
// losslessly. Byte slices become a {"__bytes_b64__": "..."} marker object
// instead of the default base64 string, so a reader of the export can tell
// bytes apart from ordinary strings. Maps and slices convert elementwise;
// anything else falls back to its string form.
func JSONSafe(v any) any {
	switch t := v.(type) {
	case nil, string, bool, int, int32, int64, float32, float64:
		return v
	case []byte:
		return map[string]any{"__bytes_b64__": base64.StdEncoding.EncodeToString(t)}
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = JSONSafe(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = JSONSafe(val)
		}
		return out
	default:
		return fmt.Sprint(v)
	}
}
