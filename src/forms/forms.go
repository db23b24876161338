package forms

import "net/url"

// Map flattens submitted form fields into a key→value mapping. A field that
// appears once maps to its string value; repeated fields coalesce into a
// slice that keeps submission order. Fields with no values are dropped.
func Map(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			out[key] = vals[0]
		default:
			list := make([]string, len(vals))
			copy(list, vals)
			out[key] = list
		}
	}
	return out
}
