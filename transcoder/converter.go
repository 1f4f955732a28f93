package transcoder

// Converter translates between a raw document value and an application-level
// parameter value. Decode runs during document extraction, Encode during
// document injection. A converter is never invoked on an absent value.
//
// Converter failures are treated as misconfiguration: the engine performs no
// recovery and a single failing rule aborts the whole decode or encode.
type Converter interface {
	Decode(raw any) (any, error)
	Encode(value any) (any, error)
}

// Identity is the default converter; it passes values through unchanged.
var Identity Converter = identity{}

type identity struct{}

func (identity) Decode(raw any) (any, error) { return raw, nil }

func (identity) Encode(value any) (any, error) { return value, nil }
