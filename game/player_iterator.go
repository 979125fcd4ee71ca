package game

// PlayerIterator keeps the round's turn order: a cyclic walk over the
// player controllers that reverse and skip cards can bend.
type PlayerIterator struct {
	players map[string]*playerController
	cycler  *Cycler
}

func newPlayerIterator(players []Player) *PlayerIterator {
	var playerNames []string
	playerMap := make(map[string]*playerController, len(players))
	for _, player := range players {
		playerName := player.Name()
		playerNames = append(playerNames, playerName)
		playerMap[playerName] = newPlayerController(player)
	}
	return &PlayerIterator{
		players: playerMap,
		cycler:  NewCycler(playerNames),
	}
}

func (i *PlayerIterator) Current() *playerController {
	return i.players[i.cycler.Current()]
}

func (i *PlayerIterator) ForEach(function func(player *playerController)) {
	i.cycler.ForEach(func(name string) {
		function(i.players[name])
	})
}

func (i *PlayerIterator) Len() int {
	return i.cycler.Len()
}

func (i *PlayerIterator) Next() *playerController {
	return i.players[i.cycler.Next()]
}

func (i *PlayerIterator) Reverse() {
	i.cycler.Reverse()
}

// Skip consumes the next player's turn and returns who lost it.
func (i *PlayerIterator) Skip() *playerController {
	return i.Next()
}
