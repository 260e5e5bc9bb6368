package component

// Phase — фаза партии
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	if p == GameOver {
		return "game_over"
	}
	return "playing"
}
