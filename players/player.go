package players

import "dogworld/model"

// Player binds one authenticated connection to the dog and session it
// controls.
type Player struct {
	session *model.GameSession
	dog     *model.Dog
	token   Token
}

func (p *Player) Session() *model.GameSession { return p.session }
func (p *Player) Dog() *model.Dog             { return p.dog }
func (p *Player) Token() Token                { return p.token }
