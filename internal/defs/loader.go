// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadEnemyDefinitions reads the enemy tier file and replaces EnemyLibrary.
// Tiers missing from the file keep their default values.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := libraryFrom(DefaultEnemyDefs)
	for _, def := range enemyDefs {
		if def.Tier < 1 || def.Tier > 4 {
			return fmt.Errorf("enemy definition %q: tier %d out of range 1..4", def.Name, def.Tier)
		}
		if def.PointValue < 0 {
			return fmt.Errorf("enemy definition %q: negative point value %d", def.Name, def.PointValue)
		}
		lib[def.Tier] = def
	}
	EnemyLibrary = lib
	return nil
}
