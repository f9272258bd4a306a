package window

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/dino-jump/internal/config"
	"github.com/vovakirdan/dino-jump/internal/core"
	"github.com/vovakirdan/dino-jump/internal/dino"
)

type memStore struct {
	best    int
	runs    []int
	saveErr error
}

func (s *memStore) BestScore() (int, error) { return s.best, nil }

func (s *memStore) SetBestScore(score int) error {
	s.best = score
	return nil
}

func (s *memStore) SaveScore(score int) (int64, error) {
	if s.saveErr != nil {
		return 0, s.saveErr
	}
	s.runs = append(s.runs, score)
	return int64(len(s.runs)), nil
}

// periodic spawns on the first frame and then every n frames.
type periodic struct{ n, calls int }

func (r *periodic) Float64() float64 {
	r.calls++
	if (r.calls-1)%r.n == 0 {
		return 0
	}
	return 0.999
}

func TestInputAction(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		running bool
		want    core.Action
	}{
		{"idle", Input{}, true, core.ActionNone},
		{"space while running", Input{Jump: true}, true, core.ActionJump},
		{"click while running", Input{Click: true}, true, core.ActionJump},
		{"restart key while running", Input{Restart: true}, true, core.ActionNone},
		{"jump key while ended", Input{Jump: true}, false, core.ActionNone},
		{"click while ended", Input{Click: true}, false, core.ActionRestart},
		{"enter while ended", Input{Restart: true}, false, core.ActionRestart},
		{"quit wins", Input{Quit: true, Click: true}, true, core.ActionQuit},
		{"quit while ended", Input{Quit: true}, false, core.ActionQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Action(tc.running); got != tc.want {
				t.Errorf("Action(%v) = %v, expected %v", tc.running, got, tc.want)
			}
		})
	}
}

// playUntil jumps the first obstacle and steps until stop reports true.
func playUntil(t *testing.T, s *session, stop func() bool) {
	t.Helper()
	for i := 0; i < 2000 && !stop(); i++ {
		in := Input{}
		if s.game.Score() == 0 {
			for _, o := range s.game.Obstacles() {
				if o.X >= 105 && o.X <= 120 {
					in.Jump = true
				}
			}
		}
		if s.update(in) {
			t.Fatal("window closed without a quit")
		}
	}
	if !stop() {
		t.Fatal("condition never reached")
	}
}

func TestSessionCrashSavesRun(t *testing.T) {
	store := &memStore{}
	s := newSession(store, config.DefaultDinoConfig(), nil, dino.WithRand(&periodic{n: 100}))

	playUntil(t, s, func() bool { return !s.game.Running() })

	if len(store.runs) != 1 || store.runs[0] != 1 {
		t.Errorf("runs = %v, expected [1]", store.runs)
	}
	if store.best != 1 {
		t.Errorf("best = %d, expected 1", store.best)
	}

	// Frames while ended do nothing, and the click restarts without jumping.
	frame := s.game.Frame()
	s.update(Input{})
	if s.game.Frame() != frame {
		t.Error("an ended session should not advance")
	}
	s.update(Input{Click: true})
	if !s.game.Running() || s.game.Score() != 0 || s.game.Player().Airborne {
		t.Errorf("click should restart cleanly, got %+v", s.game.State())
	}
}

func TestSessionJumpAdvancesSameFrame(t *testing.T) {
	s := newSession(nil, config.DefaultDinoConfig(), nil, dino.WithRand(&periodic{n: 1000}))

	s.update(Input{Jump: true})
	p := s.game.Player()
	if !p.Airborne || s.game.Frame() != 1 {
		t.Fatalf("player = %+v frame = %d, expected airborne after one frame", p, s.game.Frame())
	}
	// Impulse -13 plus one frame of gravity.
	if want := 237.6; math.Abs(p.Y-want) > 1e-9 {
		t.Errorf("y = %v, expected %v", p.Y, want)
	}
}

func TestSessionQuitKeepsRecord(t *testing.T) {
	store := &memStore{}
	s := newSession(store, config.DefaultDinoConfig(), nil, dino.WithRand(&periodic{n: 100}))

	playUntil(t, s, func() bool { return s.game.Score() == 1 })

	if !s.update(Input{Quit: true}) {
		t.Fatal("quit should close the window")
	}
	if store.best != 1 {
		t.Errorf("best = %d, expected the in-progress score 1", store.best)
	}
	if len(store.runs) != 0 {
		t.Errorf("quitting is not a finished run, got %v", store.runs)
	}
}

func TestSessionSaveFailureKeepsPlaying(t *testing.T) {
	store := &memStore{saveErr: errors.New("disk full")}
	s := newSession(store, config.DefaultDinoConfig(), nil, dino.WithRand(&periodic{n: 100}))

	playUntil(t, s, func() bool { return !s.game.Running() })

	if store.best != 1 {
		t.Errorf("best = %d, expected 1 despite the history write failing", store.best)
	}
	s.update(Input{Restart: true})
	if !s.game.Running() {
		t.Error("restart should work after a failed history write")
	}
}
