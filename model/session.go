package model

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	mrand "math/rand"
	"time"
)

// closeEnough mirrors the original server's 1e-9 per-component
// tolerance for deciding whether a clamped destination differs from
// the naive one.
const closeEnough = 1e-9

// GameSession holds the population of dogs living on one map and
// advances them one tick at a time under the map's road constraints.
type GameSession struct {
	gameMap        *Map
	dogs           []*Dog
	randomizeSpawn bool
	rng            *mrand.Rand
}

// NewGameSession creates a session bound to gameMap. randomizeSpawn
// selects whether new dogs spawn at a random point along a random
// road or always at the first road's start. The session's random
// source is seeded from crypto/rand, the same way room/manager.go
// seeds room-code generation from a nondeterministic source rather
// than a fixed seed.
func NewGameSession(gameMap *Map, randomizeSpawn bool) *GameSession {
	return &GameSession{
		gameMap:        gameMap,
		randomizeSpawn: randomizeSpawn,
		rng:            mrand.New(mrand.NewSource(secureSeed())),
	}
}

func secureSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand on a sane platform never fails; a fallback
		// still has to produce *some* seed rather than panic.
		return 0
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

func (s *GameSession) Map() *Map    { return s.gameMap }
func (s *GameSession) Dogs() []*Dog { return s.dogs }

// AddDog spawns dog into this session per the configured spawn policy
// and registers it as a member of the session.
func (s *GameSession) AddDog(dog *Dog) {
	roads := s.gameMap.Roads()
	switch {
	case len(roads) == 0:
		dog.SetPosition(PointD{X: 0, Y: 0})
	case s.randomizeSpawn:
		road := roads[s.rng.Intn(len(roads))]
		t := s.rng.Float64()
		start, end := road.Start(), road.End()
		dog.SetPosition(PointD{
			X: float64(start.X) + t*float64(end.X-start.X),
			Y: float64(start.Y) + t*float64(end.Y-start.Y),
		})
	default:
		first := roads[0]
		start := first.Start()
		dog.SetPosition(PointD{X: float64(start.X), Y: float64(start.Y)})
	}

	dog.SetSpeed(Vec2D{})
	dog.SetDirection(DirUp)
	s.dogs = append(s.dogs, dog)
}

// Tick advances every dog with non-zero velocity by delta, clamping
// each to the road(s) it currently sits on.
func (s *GameSession) Tick(delta time.Duration) {
	deltaS := delta.Seconds()
	roads := s.gameMap.Roads()

	for _, dog := range s.dogs {
		speed := dog.Speed()
		if speed.U == 0 && speed.V == 0 {
			continue
		}

		start := dog.Position()
		naive := PointD{X: start.X + speed.U*deltaS, Y: start.Y + speed.V*deltaS}

		var current []Road
		for _, r := range roads {
			if r.Contains(start) {
				current = append(current, r)
			}
		}

		if len(current) == 0 {
			dog.SetSpeed(Vec2D{})
			continue
		}

		var final PointD
		if len(current) == 1 {
			final = current[0].Clamp(naive)
		} else {
			maxDistSq := -1.0
			for _, r := range current {
				candidate := r.Clamp(naive)
				dx := candidate.X - start.X
				dy := candidate.Y - start.Y
				distSq := dx*dx + dy*dy
				if distSq > maxDistSq {
					maxDistSq = distSq
					final = candidate
				}
			}
		}

		dog.SetPosition(final)

		if !pointsClose(final, naive) {
			dog.SetSpeed(Vec2D{})
		}
	}
}

func pointsClose(a, b PointD) bool {
	return math.Abs(a.X-b.X) < closeEnough && math.Abs(a.Y-b.Y) < closeEnough
}
