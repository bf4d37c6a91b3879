package formatter

// ImportGroup represents different types of import groups. Groups render in
// ascending numeric order.
type ImportGroup int

const (
	StdGroup ImportGroup = iota
	ThirdPartyGroup
	// LocalGroupBase anchors the per-package local groups, assigned
	// dynamically from this base in configuration order.
	LocalGroupBase ImportGroup = 100
	// RelativeGroup renders last, after every local group.
	RelativeGroup ImportGroup = 1 << 20
)
