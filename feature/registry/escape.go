package registry

import (
	"net/url"

	apperrors "asset-registry/core/errors"
)

// unescape decodes a path parameter. Codes routinely contain '/' and spaces.
func unescape(param string) (string, error) {
	s, err := url.PathUnescape(param)
	if err != nil {
		return "", apperrors.NewValidationError("invalid path parameter: " + param)
	}
	return s, nil
}
