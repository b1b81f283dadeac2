package grain

import "fmt"

// Properties is the loosely typed property map a grain is defined by.
// Numeric values may arrive as any Go number type (YAML decodes whole
// numbers as int); grains always emit float64 for lengths and int for
// counts.
type Properties map[string]interface{}

func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// setFloat stores p[key] in dst when present.
func (p Properties) setFloat(key string, dst *float64) error {
	v, ok := p[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		*dst = n
	case float32:
		*dst = float64(n)
	case int:
		*dst = float64(n)
	case int64:
		*dst = float64(n)
	case uint64:
		*dst = float64(n)
	default:
		return fmt.Errorf("%w: %s=%v is not a number", ErrBadProperty, key, v)
	}
	return nil
}

func (p Properties) setInt(key string, dst *int) error {
	v, ok := p[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case int:
		*dst = n
	case int64:
		*dst = int(n)
	case uint64:
		*dst = int(n)
	case float64:
		if n != float64(int(n)) {
			return fmt.Errorf("%w: %s=%v is not a whole number", ErrBadProperty, key, v)
		}
		*dst = int(n)
	default:
		return fmt.Errorf("%w: %s=%v is not a number", ErrBadProperty, key, v)
	}
	return nil
}

func (p Properties) setText(key string, dst *string) error {
	v, ok := p[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: %s=%v is not a string", ErrBadProperty, key, v)
	}
	*dst = s
	return nil
}
