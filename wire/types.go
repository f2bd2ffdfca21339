package wire

// ProtocolVersion is bumped whenever the frame layout or any field encoding
// changes incompatibly. Peers with mismatched versions must not attempt to
// parse each other's payloads.
const ProtocolVersion = 24

const (
	// MaxPosition is the upper bound of the world coordinate range. Positions
	// are quantized into [0, MaxPosition] on both axes.
	MaxPosition = 1632

	// PlayerNameMaxLength is the fixed on-wire size of a player name in bytes.
	PlayerNameMaxLength = 16

	// ObjectIDBits is the width of a game object identifier.
	ObjectIDBits = 13

	// MaxObjectID is the largest encodable object identifier.
	MaxObjectID = 1<<ObjectIDBits - 1

	// ObjectCategoryBits is the width of an ObjectCategory field.
	ObjectCategoryBits = 4

	// VariationBits is the width of an object variation field.
	VariationBits = 3

	// MinObjectScale and MaxObjectScale bound the quantized scale range.
	MinObjectScale = 0.25
	MaxObjectScale = 3.0
)

// ObjectCategory identifies the kind of a game object on the wire.
type ObjectCategory uint8

const (
	CategoryPlayer ObjectCategory = iota
	CategoryObstacle
	CategoryDeathMarker
	CategoryLoot
	CategoryBuilding
	CategoryDecal
	CategoryParachute
	CategoryThrowableProjectile
	CategorySyncedParticle

	categoryCount
)

func (c ObjectCategory) String() string {
	switch c {
	case CategoryPlayer:
		return "Player"
	case CategoryObstacle:
		return "Obstacle"
	case CategoryDeathMarker:
		return "DeathMarker"
	case CategoryLoot:
		return "Loot"
	case CategoryBuilding:
		return "Building"
	case CategoryDecal:
		return "Decal"
	case CategoryParachute:
		return "Parachute"
	case CategoryThrowableProjectile:
		return "ThrowableProjectile"
	case CategorySyncedParticle:
		return "SyncedParticle"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c names a known object category.
func (c ObjectCategory) IsValid() bool {
	return c < categoryCount
}
