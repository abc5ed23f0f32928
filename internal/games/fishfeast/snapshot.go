package fishfeast

import (
	"math"

	"github.com/vovakirdan/fishfeast/internal/core"
)

// SnapshotMsg is the compact JSON frame published to spectators.
// Positions and radii are rounded to one decimal.
type SnapshotMsg struct {
	Type    string     `json:"t"`
	Player  string     `json:"n,omitempty"`
	Arena   [2]float64 `json:"a"`
	You     FishMsg    `json:"p"`
	Enemies []FishMsg  `json:"e"`
	Food    []FishMsg  `json:"f"`
	Current [2]float64 `json:"c"`
	Score   int        `json:"score"`
	Best    int        `json:"best"`
	Lives   int        `json:"lives"`
	Wave    int        `json:"wave"`
	Elapsed int64      `json:"elapsed"`
	Phase   string     `json:"phase"`
}

// FishMsg is one fish in a snapshot: x, y, radius and hue.
type FishMsg [4]float64

// Snapshot captures the session's current world for publishing.
func Snapshot(s *Session, player string) SnapshotMsg {
	w := s.World()
	st := s.State()

	msg := SnapshotMsg{
		Type:    "state",
		Player:  player,
		Arena:   [2]float64{round1(w.Arena.W), round1(w.Arena.H)},
		You:     fishMsg(&w.Player),
		Enemies: make([]FishMsg, len(w.Enemies)),
		Food:    make([]FishMsg, len(w.Food)),
		Current: vecMsg(w.Current),
		Score:   st.Score,
		Best:    st.Best,
		Lives:   st.Lives,
		Wave:    st.Wave,
		Elapsed: int64(st.ElapsedMS),
		Phase:   st.Phase.String(),
	}
	for i := range w.Enemies {
		msg.Enemies[i] = fishMsg(&w.Enemies[i])
	}
	for i := range w.Food {
		msg.Food[i] = fishMsg(&w.Food[i])
	}
	return msg
}

func fishMsg(f *Fish) FishMsg {
	return FishMsg{round1(f.Pos.X), round1(f.Pos.Y), round1(f.Radius), math.Round(f.Hue)}
}

func vecMsg(v core.Vec2) [2]float64 {
	return [2]float64{round1(v.X), round1(v.Y)}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
