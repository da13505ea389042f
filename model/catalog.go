package model

import (
	"fmt"
	"time"
)

// Game is the catalog of all maps and their sessions: the single
// directory every GameSession is looked up through. Its maps are fixed
// after construction; sessions are added lazily by AddSession. Maps
// and sessions are owned exclusively here; sessions hold only a
// back-reference to their map.
type Game struct {
	maps     []*Map
	mapIndex map[MapID]int

	sessions     []*GameSession
	sessionIndex map[MapID]int

	defaultDogSpeed float64
	randomizeSpawn  bool
}

// NewGame creates an empty catalog with the default dog speed of 1.0
// units per second, matching the original server's default.
func NewGame() *Game {
	return &Game{
		mapIndex:        make(map[MapID]int),
		sessionIndex:    make(map[MapID]int),
		defaultDogSpeed: 1.0,
	}
}

// AddMap registers m, failing with ErrDuplicateMap if its id already
// exists. On failure the map list is left unchanged.
func (g *Game) AddMap(m *Map) error {
	if _, exists := g.mapIndex[m.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMap, m.ID())
	}
	g.mapIndex[m.ID()] = len(g.maps)
	g.maps = append(g.maps, m)
	return nil
}

// FindMap returns the map with the given id, or nil if none exists.
func (g *Game) FindMap(id MapID) *Map {
	if idx, ok := g.mapIndex[id]; ok {
		return g.maps[idx]
	}
	return nil
}

// ListMaps returns every map in insertion order.
func (g *Game) ListMaps() []*Map { return g.maps }

func (g *Game) SetDefaultDogSpeed(v float64) { g.defaultDogSpeed = v }
func (g *Game) DefaultDogSpeed() float64     { return g.defaultDogSpeed }

func (g *Game) SetRandomizeSpawn(randomize bool) { g.randomizeSpawn = randomize }

// FindSession returns the existing session for mapID, or nil.
func (g *Game) FindSession(mapID MapID) *GameSession {
	if idx, ok := g.sessionIndex[mapID]; ok {
		return g.sessions[idx]
	}
	return nil
}

// AddSession creates and registers a session for mapID. Returns nil if
// no such map exists.
func (g *Game) AddSession(mapID MapID) *GameSession {
	m := g.FindMap(mapID)
	if m == nil {
		return nil
	}
	session := NewGameSession(m, g.randomizeSpawn)
	g.sessionIndex[mapID] = len(g.sessions)
	g.sessions = append(g.sessions, session)
	return session
}

// Tick advances every session by delta.
func (g *Game) Tick(delta time.Duration) {
	for _, session := range g.sessions {
		session.Tick(delta)
	}
}
