package inspect

import "vsnorm/internal/jsonio"

func marshalIndent(v any) (string, error) {
	data, err := jsonio.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
