package domain

import (
	gojson "github.com/goccy/go-json"
)

// The JSON codec is aliased here so every serialized surface (API, snapshot
// formatter) encodes case documents identically.
var (
	jsonMarshal   = gojson.Marshal
	jsonUnmarshal = gojson.Unmarshal
)
