package transcoder

// Params is the structured parameter map a transcoder reads from and writes
// to. Shape is entirely determined by the registered param paths; nested
// levels are plain Params (or map[string]any when supplied by a caller).
type Params map[string]any

// PutPath places value at the given key path, building intermediate maps
// only where missing. An existing intermediate map is descended into, never
// replaced, so sibling keys under a shared prefix survive; a non-map value
// sitting at an intermediate key is replaced by a fresh map.
func (p Params) PutPath(path []string, value any) Params {
	if p == nil {
		p = Params{}
	}

	node := p
	for _, key := range path[:len(path)-1] {
		next, ok := asMap(node[key])
		if !ok {
			next = Params{}
			node[key] = next
		}

		node = next
	}

	node[path[len(path)-1]] = value

	return p
}

// GetPath reads the value at the given key path. Any absent or non-map
// intermediate makes the whole path absent.
func (p Params) GetPath(path []string) (any, bool) {
	node := p
	for _, key := range path[:len(path)-1] {
		next, ok := asMap(node[key])
		if !ok {
			return nil, false
		}

		node = next
	}

	v, ok := node[path[len(path)-1]]

	return v, ok
}

// Clone returns a deep copy of the map-shaped structure. Leaf values are
// shared.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		if m, ok := asMap(v); ok {
			out[k] = m.Clone()
		} else {
			out[k] = v
		}
	}

	return out
}

func asMap(v any) (Params, bool) {
	switch tv := v.(type) {
	case Params:
		return tv, true
	case map[string]any:
		return Params(tv), true
	default:
		return nil, false
	}
}
