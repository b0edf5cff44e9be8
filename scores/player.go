// Package scores tracks a player's score history in a
// collections.SinglyLinkedList, oldest score first.
package scores

import (
	"github.com/Invicton-Labs/go-stackerr"
	"github.com/Mangofish369/CSC148-Labs/collections"
)

type Player struct {
	name    string
	history collections.SinglyLinkedList[int]
}

func NewPlayer(name string) *Player {
	return &Player{
		name: name,
	}
}

func (p *Player) Name() string {
	return p.name
}

// Len returns how many scores have been recorded.
func (p *Player) Len() int {
	return p.history.Len()
}

// AddScores appends the scores to the end of the history, in order.
func (p *Player) AddScores(scores ...int) {
	for _, s := range scores {
		p.history.Append(s)
	}
}

// History returns the recorded scores, oldest first.
func (p *Player) History() []int {
	return p.history.Values()
}

// Average returns the mean of the n most recent scores.
func (p *Player) Average(n int) (float64, stackerr.Error) {
	if n <= 0 || n > p.history.Len() {
		return 0, stackerr.Errorf("cannot average the last %d scores", n).With(map[string]any{
			"player":  p.name,
			"n":       n,
			"history": p.history.Len(),
		})
	}
	first := p.history.Len() - n
	sum := 0
	p.history.Range(func(index int, score int) bool {
		if index >= first {
			sum += score
		}
		return true
	})
	return float64(sum) / float64(n), nil
}

// TopScore returns the highest recorded score.
func (p *Player) TopScore() (int, stackerr.Error) {
	if p.history.IsEmpty() {
		return 0, stackerr.Errorf("player %s has no scores", p.name)
	}
	top, _ := p.history.Get(0)
	p.history.Range(func(_ int, score int) bool {
		if score > top {
			top = score
		}
		return true
	})
	return top, nil
}
