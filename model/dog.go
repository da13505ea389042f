package model

// DogID is a monotonically increasing identifier assigned by the
// player registry when a dog is created.
type DogID uint64

// Direction is the last non-empty movement intent. It is never reset
// to empty by stopping — see MovePlayer's empty-command case.
type Direction string

const (
	DirLeft  Direction = "L"
	DirRight Direction = "R"
	DirUp    Direction = "U"
	DirDown  Direction = "D"
)

// Dog is a player avatar: identity, display name, and the mutable
// state a tick or a move command can change. It carries no business
// logic of its own — the registry (id), GameSession.AddDog and
// GameSession.Tick, and Application.MovePlayer are its only mutators.
type Dog struct {
	id        DogID
	name      string
	pos       PointD
	speed     Vec2D
	direction Direction
}

// NewDog creates a dog with the given display name, zero velocity,
// and the default facing direction. Its id and position are set by
// the registry and session that adopt it.
func NewDog(name string) *Dog {
	return &Dog{name: name, direction: DirUp}
}

func (d *Dog) ID() DogID    { return d.id }
func (d *Dog) Name() string { return d.name }

func (d *Dog) Position() PointD     { return d.pos }
func (d *Dog) Speed() Vec2D         { return d.speed }
func (d *Dog) Direction() Direction { return d.direction }

func (d *Dog) SetID(id DogID)             { d.id = id }
func (d *Dog) SetPosition(p PointD)       { d.pos = p }
func (d *Dog) SetSpeed(v Vec2D)           { d.speed = v }
func (d *Dog) SetDirection(dir Direction) { d.direction = dir }
