// internal/event/types.go
package event

const (
	PlayerFired    EventType = "PlayerFired"    // игрок выстрелил, Data: *component.Bullet
	EnemyFired     EventType = "EnemyFired"     // враг выстрелил, Data: *component.EnemyShip
	EnemyDestroyed EventType = "EnemyDestroyed" // сбит враг, Data: *component.EnemyShip
	ScoreChanged   EventType = "ScoreChanged"   // Data: int, новый счёт
	PlayerHit      EventType = "PlayerHit"      // Data: int, оставшиеся жизни
	GameOver       EventType = "GameOver"       // Data: bool, победа игрока
)
