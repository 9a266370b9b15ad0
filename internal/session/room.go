package session

import (
	"log"

	"github.com/google/uuid"

	"duelo/internal/game/duel"
	"duelo/internal/services/events"
	"duelo/internal/session/message"
)

// Fases de uma partida.
const (
	phase_WAITING_FOR_PLAYS = "waiting-for-plays" // aceita submissões de ação
	phase_GAME_OVER         = "game-over"         // só aceita reset ou saída
)

// Match é uma partida ativa entre exatamente dois jogadores. Assim como o
// resto do estado do jogo, ela só é tocada pela goroutine do hub.
type Match struct {
	ID      string
	players [2]*PlayerSession

	// round é o número da rodada ATUAL (começa em 1); incrementa depois de
	// cada resolução.
	round int
	phase string

	// Estado de batalha e ações pendentes da rodada atual, por jogador.
	battle         map[*PlayerSession]duel.State
	pendingActions map[*PlayerSession]duel.Action

	// Pedidos de revanche; a partida reinicia quando os dois pedirem.
	pendingResets map[*PlayerSession]bool
}

func newMatch(p1, p2 *PlayerSession) *Match {
	return &Match{
		ID:      uuid.NewString(),
		players: [2]*PlayerSession{p1, p2},
		round:   1,
		phase:   phase_WAITING_FOR_PLAYS,
		battle: map[*PlayerSession]duel.State{
			p1: duel.NewState(),
			p2: duel.NewState(),
		},
		pendingActions: make(map[*PlayerSession]duel.Action),
		pendingResets:  make(map[*PlayerSession]bool),
	}
}

// opponent retorna o outro jogador da partida.
func (m *Match) opponent(p *PlayerSession) *PlayerSession {
	if m.players[0] == p {
		return m.players[1]
	}
	return m.players[0]
}

// broadcastState manda um Update para cada jogador, cada um vendo o próprio
// estado como "seu" e o do oponente como "do oponente".
func (m *Match) broadcastState() {
	for _, p := range m.players {
		opp := m.opponent(p)
		mine, theirs := m.battle[p], m.battle[opp]
		p.deliver(message.Update{
			Type:                "update",
			HP:                  mine.HP,
			OpponentHP:          theirs.HP,
			Loaded:              mine.Loaded,
			OpponentLoaded:      theirs.Loaded,
			BlockPoints:         mine.BlockPoints,
			OpponentBlockPoints: theirs.BlockPoints,
			Round:               m.round,
			YourName:            p.Name,
			OpponentName:        opp.Name,
		})
	}
}

// startMatch cria a partida e move os dois jogadores para dentro dela. O
// primeiro Update (rodada 1, estados iniciais) sai imediatamente.
func (h *GameHandler) startMatch(p1, p2 *PlayerSession) {
	m := newMatch(p1, p2)
	h.matches[m.ID] = m

	for _, p := range m.players {
		p.State = state_IN_MATCH
		p.Room = m.ID
	}

	log.Printf("[GameHandler] match %s started: %q vs %q", m.ID, p1.Name, p2.Name)
	h.broadcastLobby()
	m.broadcastState()

	h.events.MatchStarted(events.MatchStartedEvent{
		MatchID: m.ID,
		Players: []string{p1.Name, p2.Name},
	})
}

// teardownMatch encerra a partida antes da hora (saída voluntária ou queda
// de conexão) e devolve os dois jogadores ao lobby. O oponente de quem saiu
// sempre recebe room_left; quem saiu só recebe se ainda estiver conectado
// (notifyLeaver).
func (h *GameHandler) teardownMatch(m *Match, leaving *PlayerSession, reason string, notifyLeaver bool) {
	delete(h.matches, m.ID)

	opp := m.opponent(leaving)
	for _, p := range m.players {
		p.State = state_LOBBY
		p.Room = ""
	}

	opp.deliver(message.CreateRoomLeft())
	if notifyLeaver {
		leaving.deliver(message.CreateRoomLeft())
	}

	log.Printf("[GameHandler] match %s torn down (%s)", m.ID, reason)
	h.events.MatchFinished(events.MatchFinishedEvent{
		MatchID: m.ID,
		Reason:  reason,
	})
}
