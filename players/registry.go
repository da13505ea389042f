package players

import "dogworld/model"

// Registry is the cross-map directory of every connected player,
// keyed by bearer token. It owns no dogs or sessions itself; dog.id
// assignment happens here because dog ids are scoped to this registry
// in the original server, not to a particular map.
type Registry struct {
	players []*Player
	byToken map[Token]*Player
	nextID  model.DogID
	tokens  tokenSource
}

func NewRegistry() *Registry {
	return &Registry{
		byToken: make(map[Token]*Player),
		tokens:  newTokenGenerator(),
	}
}

// Add registers dog as a member of session under a freshly minted
// token and returns the resulting player.
func (r *Registry) Add(dog *model.Dog, session *model.GameSession) *Player {
	dog.SetID(r.nextID)
	r.nextID++

	token := r.tokens.Next()
	for r.byToken[token] != nil {
		token = r.tokens.Next()
	}

	player := &Player{session: session, dog: dog, token: token}
	r.players = append(r.players, player)
	r.byToken[player.token] = player
	return player
}

// FindByToken returns the player holding token, or nil if none does.
func (r *Registry) FindByToken(token Token) *Player {
	return r.byToken[token]
}

// List returns every registered player in join order.
func (r *Registry) List() []*Player { return r.players }
