package manifest

import "errors"

var (
	ErrManifest      = errors.New("manifest error")
	ErrUnresolvedRef = errors.New("unresolved reference")
)
