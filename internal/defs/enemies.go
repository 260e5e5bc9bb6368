// internal/defs/enemies.go
package defs

// EnemyDefinition holds the static data for one enemy tier.
type EnemyDefinition struct {
	Tier       int    `json:"tier"`
	Name       string `json:"name"`
	PointValue int    `json:"point_value"`
	CanShoot   bool   `json:"can_shoot"`
}

// DefaultEnemyDefs — уровни по умолчанию: чем сильнее, тем дороже;
// стреляют только 3 и 4.
var DefaultEnemyDefs = []EnemyDefinition{
	{Tier: 1, Name: "drone", PointValue: 5, CanShoot: false},
	{Tier: 2, Name: "scout", PointValue: 10, CanShoot: false},
	{Tier: 3, Name: "gunner", PointValue: 15, CanShoot: true},
	{Tier: 4, Name: "commander", PointValue: 20, CanShoot: true},
}

// EnemyLibrary is the library of enemy definitions, keyed by tier.
var EnemyLibrary = libraryFrom(DefaultEnemyDefs)

func libraryFrom(list []EnemyDefinition) map[int]EnemyDefinition {
	lib := make(map[int]EnemyDefinition, len(list))
	for _, def := range list {
		lib[def.Tier] = def
	}
	return lib
}

// EnemyTier возвращает определение уровня; неизвестный уровень — первый.
func EnemyTier(tier int) EnemyDefinition {
	if def, ok := EnemyLibrary[tier]; ok {
		return def
	}
	if def, ok := EnemyLibrary[1]; ok {
		return def
	}
	return DefaultEnemyDefs[0]
}

// ResetEnemyDefinitions возвращает библиотеку к значениям по умолчанию.
func ResetEnemyDefinitions() {
	EnemyLibrary = libraryFrom(DefaultEnemyDefs)
}
