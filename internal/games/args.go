package games

import (
	"fmt"
	"strconv"
)

// CoerceArgs converts raw string arguments (as they arrive from button
// payloads and command options) to the types the move's descriptor declares.
// Unknown argument names pass through as strings. A non-numeric value for an
// int or float parameter is an error; the move must not run.
func CoerceArgs(desc MoveDescriptor, raw map[string]string) (Args, error) {
	types := make(map[string]ParamType, len(desc.Params))
	for _, p := range desc.Params {
		types[p.Name] = p.Type
	}

	coerced := make(Args, len(raw))
	for name, value := range raw {
		switch types[name] {
		case ParamInt:
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %q is not an integer", name, value)
			}
			coerced[name] = n
		case ParamFloat:
			f, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %q is not a number", name, value)
			}
			coerced[name] = f
		default:
			coerced[name] = value
		}
	}
	return coerced, nil
}

// EffectiveHandlerName returns the handler name a move resolves to: the
// declared callback when present, else the move name itself.
func EffectiveHandlerName(desc MoveDescriptor) string {
	if desc.Callback != "" {
		return desc.Callback
	}
	return desc.Name
}
