// internal/app/factory.go
package app

import "go-space-invaders/internal/utils"

// NewFactory возвращает конструктор партий с общими опциями. Каждая партия
// получает свой PRNGService с сидом seed; при seed == 0 сид берётся от времени,
// иначе все партии повторяют одну и ту же последовательность выстрелов.
func NewFactory(height, width float64, seed int64, opts ...Option) func() (*Game, error) {
	return func() (*Game, error) {
		all := make([]Option, 0, len(opts)+1)
		all = append(all, WithRandomizer(utils.NewPRNGService(seed)))
		all = append(all, opts...)
		return NewGame(height, width, all...)
	}
}
