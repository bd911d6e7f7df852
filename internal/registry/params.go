package registry

// ParameterSet holds the live values of a blueprint's parameters. Values are
// untyped at this boundary; validation against the template schema happens
// before persistence, not on every edit.
type ParameterSet map[string]interface{}

// Clone returns a shallow copy. Edits go through copies so callers can treat
// parameter sets as immutable snapshots.
func (p ParameterSet) Clone() ParameterSet {
	out := make(ParameterSet, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
