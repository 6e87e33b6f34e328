package domain

// Reserved action types. Applications must not reuse the "@@flux/" prefix.
const (
	// ActionInit is dispatched once, when a store is built, to let the
	// reducer produce its default state.
	ActionInit = "@@flux/INIT"

	// EffectType is the printable type reported for unnamed effects.
	EffectType = "@@flux/EFFECT"
)

// InitInfo is the payload of the ActionInit command a store sends.
// Preloaded is set when the store was seeded with a state, which then
// seeds the reducer in place of its default.
type InitInfo struct {
	Preloaded bool
}

// IsPreloadedInit reports whether cmd is a bootstrap of a seeded store.
func IsPreloadedInit(cmd Command) bool {
	if cmd.Type != ActionInit {
		return false
	}
	switch info := cmd.Payload.(type) {
	case InitInfo:
		return info.Preloaded
	case *InitInfo:
		return info != nil && info.Preloaded
	}
	return false
}
