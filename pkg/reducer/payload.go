package reducer

import (
	"errors"
	"fmt"

	"github.com/aretw0/flux/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// ErrPayloadType is returned when a command payload cannot be read as the requested type.
var ErrPayloadType = errors.New("unexpected payload type")

// Payload reads the payload of cmd as T.
// Values already of type T (or *T) are returned as is; maps and other
// loosely typed values (e.g. decoded from YAML or JSON) are decoded with mapstructure.
func Payload[T any](cmd domain.Command) (T, error) {
	var out T

	switch v := cmd.Payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("%w: %q has a nil payload", ErrPayloadType, cmd.Type)
		}
		return *v, nil
	}
	if cmd.Payload == nil {
		return out, fmt.Errorf("%w: %q has no payload", ErrPayloadType, cmd.Type)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, fmt.Errorf("failed to build payload decoder: %w", err)
	}
	if err := dec.Decode(cmd.Payload); err != nil {
		return out, fmt.Errorf("%w: %q: %v", ErrPayloadType, cmd.Type, err)
	}
	return out, nil
}
