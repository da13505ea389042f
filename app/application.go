package app

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"dogworld/model"
	"dogworld/players"
)

// Application is the single point of entry for every operation that
// touches the game catalog or the player registry. Every public
// method funnels through one goroutine (the strand) so the catalog
// never needs its own locking, the same way room.Room serializes all
// access to one room's state through its Inbox/select loop -
// generalized here to the whole game instead of one room.
type Application struct {
	game     *model.Game
	registry *players.Registry
	log      *logrus.Logger

	inbox chan func()
	quit  chan struct{}
	done  chan struct{}
}

func NewApplication(game *model.Game, registry *players.Registry, log *logrus.Logger) *Application {
	return &Application{
		game:     game,
		registry: registry,
		log:      log,
		inbox:    make(chan func(), 256),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run executes the strand loop until Stop is called. It must run on
// its own goroutine; every other method blocks until its submitted
// closure has run here.
func (a *Application) Run() {
	defer close(a.done)
	for {
		select {
		case <-a.quit:
			return
		case fn := <-a.inbox:
			fn()
		}
	}
}

// Stop requests the strand loop to exit and waits for it to do so.
func (a *Application) Stop() {
	close(a.quit)
	<-a.done
}

// submit runs fn on the strand and returns its result, blocking the
// caller until it has executed. Every exported Application method is
// built on this so no two operations can ever interleave.
func submit[T any](a *Application, fn func() T) T {
	resultCh := make(chan T, 1)
	a.inbox <- func() { resultCh <- fn() }
	return <-resultCh
}

func (a *Application) ListMaps() []*model.Map {
	return submit(a, func() []*model.Map { return a.game.ListMaps() })
}

func (a *Application) FindMap(id model.MapID) *model.Map {
	return submit(a, func() *model.Map { return a.game.FindMap(id) })
}

// JoinResult is what JoinGame hands back to the HTTP layer.
type JoinResult struct {
	Token players.Token
	DogID model.DogID
}

type joinOutcome struct {
	result JoinResult
	err    error
}

// JoinGame creates a dog for userName on mapID's session, registering
// it with a freshly minted token.
func (a *Application) JoinGame(mapID model.MapID, userName string) (JoinResult, error) {
	outcome := submit(a, func() joinOutcome {
		if userName == "" {
			return joinOutcome{err: fmt.Errorf("%w: user name must not be empty", ErrInvalidArgument)}
		}

		m := a.game.FindMap(mapID)
		if m == nil {
			return joinOutcome{err: fmt.Errorf("%w: %s", ErrMapNotFound, mapID)}
		}

		session := a.game.FindSession(mapID)
		if session == nil {
			session = a.game.AddSession(mapID)
		}

		dog := model.NewDog(userName)
		session.AddDog(dog)
		player := a.registry.Add(dog, session)

		return joinOutcome{result: JoinResult{Token: player.Token(), DogID: dog.ID()}}
	})
	return outcome.result, outcome.err
}

// FindByToken looks up the player holding token.
func (a *Application) FindByToken(token players.Token) *players.Player {
	return submit(a, func() *players.Player { return a.registry.FindByToken(token) })
}

// ResolveToken is FindByToken with ErrUnknownToken on a miss, for
// callers that need an error rather than a nil player - the HTTP
// layer's authorization path, once it has already established the
// Authorization header was shaped like a bearer token.
func (a *Application) ResolveToken(token players.Token) (*players.Player, error) {
	player := a.FindByToken(token)
	if player == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownToken, token)
	}
	return player, nil
}

// SessionDogs returns every dog sharing player's session, in join
// order - the population backing both /game/players and
// /game/state.
func (a *Application) SessionDogs(player *players.Player) []*model.Dog {
	return submit(a, func() []*model.Dog { return player.Session().Dogs() })
}

// validMoveCommands mirrors the original server's acceptance of
// exactly the four direction letters plus the empty stop command.
var validMoveCommands = map[string]model.Direction{
	"L": model.DirLeft,
	"R": model.DirRight,
	"U": model.DirUp,
	"D": model.DirDown,
}

// MovePlayer applies moveCmd to player's dog. An empty moveCmd stops
// the dog without changing its facing direction; any other string
// outside {L,R,U,D,""} is ErrInvalidArgument.
func (a *Application) MovePlayer(player *players.Player, moveCmd string) error {
	if moveCmd != "" {
		if _, ok := validMoveCommands[moveCmd]; !ok {
			return fmt.Errorf("%w: unrecognized move command %q", ErrInvalidArgument, moveCmd)
		}
	}

	submit(a, func() struct{} {
		dog := player.Dog()
		m := player.Session().Map()

		speed, ok := m.DogSpeed()
		if !ok {
			speed = a.game.DefaultDogSpeed()
		}

		var v model.Vec2D
		direction := dog.Direction()
		if dir, ok := validMoveCommands[moveCmd]; ok {
			direction = dir
			switch dir {
			case model.DirLeft:
				v.U = -speed
			case model.DirRight:
				v.U = speed
			case model.DirUp:
				v.V = -speed
			case model.DirDown:
				v.V = speed
			}
		}

		dog.SetSpeed(v)
		dog.SetDirection(direction)
		return struct{}{}
	})
	return nil
}

// Tick advances every session by delta.
func (a *Application) Tick(delta time.Duration) {
	submit(a, func() struct{} {
		a.game.Tick(delta)
		return struct{}{}
	})
}
