// Package deck implements a deck of playing cards stored in a
// collections.SinglyLinkedList. The top of the deck is the last card.
package deck

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/Invicton-Labs/go-stackerr"
	"github.com/Mangofish369/CSC148-Labs/collections"
	"github.com/google/uuid"
)

type Card struct {
	Value int
	Suit  string
}

func (c Card) String() string {
	return fmt.Sprintf("Suit:%s Value:%d", c.Suit, c.Value)
}

type Deck struct {
	id    uuid.UUID
	cards collections.SinglyLinkedList[Card]
}

// New creates an empty deck.
func New() *Deck {
	return &Deck{
		id: uuid.New(),
	}
}

// ID identifies the deck in log output.
func (d *Deck) ID() uuid.UUID {
	return d.id
}

func (d *Deck) Len() int {
	return d.cards.Len()
}

// AddCard puts a new card on top of the deck.
func (d *Deck) AddCard(value int, suit string) {
	d.cards.Append(Card{
		Value: value,
		Suit:  suit,
	})
}

// Draw takes the top card off the deck. It returns false if the deck is
// empty.
func (d *Deck) Draw() (Card, bool) {
	if d.cards.IsEmpty() {
		return Card{}, false
	}
	card, err := d.cards.Pop(d.cards.Len() - 1)
	if err != nil {
		return Card{}, false
	}
	return card, true
}

// Remove takes the lowest card equal to card out of the deck.
func (d *Deck) Remove(card Card) stackerr.Error {
	idx, err := d.cards.Index(card)
	if err != nil {
		return stackerr.Wrap(err).With(map[string]any{
			"deck_id": d.id.String(),
			"card":    card.String(),
		})
	}
	if _, err := d.cards.Pop(idx); err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}

// Shuffle puts the cards in a random order drawn from rng.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := d.cards.Len() - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		if i == j {
			continue
		}
		a, _ := d.cards.Get(i)
		b, _ := d.cards.Get(j)
		_ = d.cards.Set(i, b)
		_ = d.cards.Set(j, a)
	}
}

// Cards returns the cards from the bottom of the deck to the top.
func (d *Deck) Cards() []Card {
	return d.cards.Values()
}

// Render writes one "<value> <suit>" line per card, bottom to top.
func (d *Deck) Render(w io.Writer) (err error) {
	d.cards.Range(func(_ int, card Card) bool {
		_, err = fmt.Fprintln(w, card.Value, card.Suit)
		return err == nil
	})
	if err != nil {
		return stackerr.Wrap(err)
	}
	return nil
}
