package main

import (
	"bytes"
	"context"
	"errors"
	"math/rand"

	"github.com/Invicton-Labs/go-stackerr"
	"github.com/Mangofish369/CSC148-Labs/collections"
	"github.com/Mangofish369/CSC148-Labs/deck"
	"github.com/Mangofish369/CSC148-Labs/gensync"
	"github.com/Mangofish369/CSC148-Labs/log"
	"github.com/Mangofish369/CSC148-Labs/scores"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

type scenario struct {
	name string
	run  func(ctx context.Context, cfg config) error
}

var scenarios = []scenario{
	{"insert", insertScenario},
	{"pop", popScenario},
	{"index", indexScenario},
	{"set", setScenario},
	{"deck", deckScenario},
	{"scores", scoresScenario},
	{"concurrent", concurrentScenario},
}

// runScenarios runs every scenario and returns all of their failures
// combined.
func runScenarios(ctx context.Context, cfg config) error {
	var errs error
	for _, s := range scenarios {
		logger := log.FromContext(ctx).With("scenario", s.name)
		if err := s.run(log.LogContext(ctx, logger), cfg); err != nil {
			logger.Error(err)
			errs = multierr.Append(errs, err)
			continue
		}
		logger.Infow("scenario passed")
	}
	return errs
}

func expect(got string, want string) stackerr.Error {
	if got != want {
		return stackerr.Errorf("unexpected list contents").With(map[string]any{
			"got":  got,
			"want": want,
		})
	}
	return nil
}

func expectErr(err error, target error) stackerr.Error {
	if !errors.Is(err, target) {
		return stackerr.Errorf("expected %v, got %v", target, err)
	}
	return nil
}

func insertScenario(ctx context.Context, _ config) error {
	logger := log.FromContext(ctx)
	l := collections.NewSinglyLinkedList([]int{1, 2, 10, 200})

	if err := l.Insert(2, 300); err != nil {
		return stackerr.Wrap(err)
	}
	if err := expect(l.String(), "[1 -> 2 -> 300 -> 10 -> 200]"); err != nil {
		return err
	}
	if err := l.Insert(5, -1); err != nil {
		return stackerr.Wrap(err)
	}
	if err := expect(l.String(), "[1 -> 2 -> 300 -> 10 -> 200 -> -1]"); err != nil {
		return err
	}
	err := l.Insert(100, 2)
	logger.Debugw("insert past the end", "error", err, "list", l.String())
	if err := expectErr(err, collections.ErrIndexOutOfRange); err != nil {
		return err
	}
	return nil
}

func popScenario(ctx context.Context, _ config) error {
	logger := log.FromContext(ctx)
	l := collections.NewSinglyLinkedList([]int{1, 2, 10, 200})

	var popped []int
	for _, idx := range []int{1, 2} {
		v, err := l.Pop(idx)
		if err != nil {
			return stackerr.Wrap(err)
		}
		popped = append(popped, v)
	}
	_, err := l.Pop(148)
	if err := expectErr(err, collections.ErrIndexOutOfRange); err != nil {
		return err
	}
	v, err := l.Pop(0)
	if err != nil {
		return stackerr.Wrap(err)
	}
	popped = append(popped, v)

	logger.Debugw("popped", "items", popped, "list", l.String())
	if len(popped) != 3 || popped[0] != 2 || popped[1] != 200 || popped[2] != 1 {
		return stackerr.Errorf("unexpected popped items: %v", popped)
	}
	return expect(l.String(), "[10]")
}

func indexScenario(ctx context.Context, _ config) error {
	l := collections.NewSinglyLinkedList([]int{1, 2, 1, 3, 2, 1})
	for item, want := range map[int]int{1: 0, 3: 3} {
		got, err := l.Index(item)
		if err != nil {
			return stackerr.Wrap(err)
		}
		if got != want {
			return stackerr.Errorf("index(%d) = %d, want %d", item, got, want)
		}
	}
	_, err := l.Index(148)
	if err := expectErr(err, collections.ErrNotFound); err != nil {
		return err
	}
	log.FromContext(ctx).Debugw("searched", "list", l.String())
	return nil
}

func setScenario(_ context.Context, _ config) error {
	l := collections.NewSinglyLinkedList([]int{1, 2, 3})
	for i, v := range []int{100, 200, 300} {
		if err := l.Set(i, v); err != nil {
			return stackerr.Wrap(err)
		}
	}
	if err := expect(l.String(), "[100 -> 200 -> 300]"); err != nil {
		return err
	}
	return expectErr(l.Set(3, 400), collections.ErrIndexOutOfRange)
}

func deckScenario(ctx context.Context, cfg config) error {
	d := deck.New()
	logger := log.FromContext(ctx).With("deck_id", d.ID().String())

	d.AddCard(1, "Hearts")
	d.AddCard(2, "Spades")
	d.AddCard(3, "Clubs")
	d.AddCard(4, "Diamonds")
	d.Shuffle(rand.New(rand.NewSource(cfg.seed)))

	buf := &bytes.Buffer{}
	if err := d.Render(buf); err != nil {
		return err
	}
	logger.Infow("shuffled deck", "cards", buf.String())

	for {
		card, ok := d.Draw()
		if !ok {
			break
		}
		logger.Debugw("drew card", "card", card.String(), "remaining", d.Len())
	}
	return nil
}

func scoresScenario(ctx context.Context, _ config) error {
	p := scores.NewPlayer("001")
	p.AddScores(10, 20, 24, 25, 26)

	avg, err := p.Average(3)
	if err != nil {
		return err
	}
	top, err := p.TopScore()
	if err != nil {
		return err
	}
	log.FromContext(ctx).Infow("score summary", "player", p.Name(), "average", avg, "top", top)
	if avg != 25 || top != 26 {
		return stackerr.Errorf("unexpected score summary").With(map[string]any{
			"average": avg,
			"top":     top,
		})
	}
	if _, err := p.Average(p.Len() + 1); err == nil {
		return stackerr.Errorf("average over more scores than recorded succeeded")
	}
	return nil
}

// concurrentScenario has several workers append to and rotate one shared
// list, then checks that nothing was lost.
func concurrentScenario(ctx context.Context, cfg config) error {
	const perWorker = 100

	shared := gensync.NewLinkedList[int](nil)
	grp, grpCtx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.workers; w++ {
		w := w
		grp.Go(func() error {
			for i := 0; i < perWorker; i++ {
				shared.Append(w*perWorker + i)
				err := shared.Update(grpCtx, func(list *collections.SinglyLinkedList[int]) error {
					v, err := list.Pop(0)
					if err != nil {
						return err
					}
					return list.Insert(list.Len(), v)
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return stackerr.Wrap(err)
	}

	if want := cfg.workers * perWorker; shared.Len() != want {
		return stackerr.Errorf("shared list has %d items, want %d", shared.Len(), want)
	}
	log.FromContext(ctx).Infow("concurrent appends settled", "workers", cfg.workers, "length", shared.Len())
	return nil
}
