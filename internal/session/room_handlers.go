package session

import (
	"encoding/json"
	"log"

	"duelo/internal/game/duel"
	"duelo/internal/services/events"
	"duelo/internal/session/message"
)

func (h *GameHandler) registerMatchHandlers() {
	h.matchRouter[message.TypeSubmit] = handleSubmit
	h.matchRouter[message.TypeReset] = handleReset
	h.matchRouter[message.TypeChat] = handleChat
	h.matchRouter[message.TypeLeaveRoom] = handleLeaveRoom
}

// handleSubmit recebe a ação da rodada. A submissão é secreta (o oponente
// não é avisado) e reenviar antes da resolução sobrescreve a anterior. A
// rodada resolve no momento em que as DUAS ações existem.
func handleSubmit(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	m := h.matches[session.Room]
	if m == nil || m.phase != phase_WAITING_FOR_PLAYS {
		return
	}

	var req message.SubmitRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return
	}
	action, ok := duel.ParseAction(req.Action)
	if !ok {
		log.Printf("[GameHandler] %q submitted unknown action %q", session.Name, req.Action)
		return
	}

	m.pendingActions[session] = action
	if len(m.pendingActions) == 2 {
		h.resolveRound(m)
	}
}

// resolveRound aplica as duas ações pendentes, avança o contador de rodada
// e notifica os jogadores: primeiro as ações reveladas, depois o estado
// novo, e por fim game_over se alguém (ou os dois) caiu.
func (h *GameHandler) resolveRound(m *Match) {
	p1, p2 := m.players[0], m.players[1]
	act1, act2 := m.pendingActions[p1], m.pendingActions[p2]

	resolved := m.round
	next1, next2 := duel.ResolveRound(m.battle[p1], m.battle[p2], act1, act2)
	m.battle[p1], m.battle[p2] = next1, next2
	m.round++
	m.pendingActions = make(map[*PlayerSession]duel.Action)

	// As ações reveladas chegam antes do update para o cliente narrar a
	// jogada sobre o estado antigo.
	p1.deliver(message.CreateActions(string(act1), string(act2)))
	p2.deliver(message.CreateActions(string(act2), string(act1)))
	m.broadcastState()

	h.events.RoundResolved(events.RoundResolvedEvent{
		MatchID: m.ID,
		Round:   resolved,
		Actions: []string{string(act1), string(act2)},
		HP:      []int{next1.HP, next2.HP},
	})

	outcome := duel.Judge(next1, next2)
	if outcome == duel.Ongoing {
		return
	}

	m.phase = phase_GAME_OVER
	var winner string
	switch outcome {
	case duel.Player1Wins:
		winner = p1.Name
	case duel.Player2Wins:
		winner = p2.Name
	}
	draw := outcome == duel.Draw

	over := message.CreateGameOver(winner, draw)
	p1.deliver(over)
	p2.deliver(over)

	log.Printf("[GameHandler] match %s over after round %d (winner=%q draw=%v)", m.ID, resolved, winner, draw)
	h.events.MatchFinished(events.MatchFinishedEvent{
		MatchID: m.ID,
		Winner:  winner,
		Draw:    draw,
		Reason:  "resolved",
	})
}

// handleReset é o pedido de revanche. O primeiro pedido fica pendente e é
// confirmado com waiting_for_reset; quando o segundo chega, a partida volta
// inteira ao estado inicial, rodada 1, e segue com os mesmos jogadores.
func handleReset(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	m := h.matches[session.Room]
	if m == nil {
		return
	}

	m.pendingResets[session] = true
	if len(m.pendingResets) < 2 {
		session.deliver(message.CreateWaitingForReset())
		return
	}

	for _, p := range m.players {
		m.battle[p] = duel.NewState()
	}
	m.pendingActions = make(map[*PlayerSession]duel.Action)
	m.pendingResets = make(map[*PlayerSession]bool)
	m.round = 1
	m.phase = phase_WAITING_FOR_PLAYS

	log.Printf("[GameHandler] match %s reset", m.ID)
	m.broadcastState()
}

// handleChat retransmite a mensagem apenas para o oponente; o remetente
// ecoa localmente.
func handleChat(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	m := h.matches[session.Room]
	if m == nil {
		return
	}
	var req message.ChatRequest
	if err := json.Unmarshal(data, &req); err != nil || req.Message == "" {
		return
	}
	m.opponent(session).deliver(message.CreateChat(session.Name, req.Message))
}
