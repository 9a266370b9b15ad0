package session

import (
	"encoding/json"
	"log"

	"duelo/internal/network"
	"duelo/internal/services/events"
	"duelo/internal/session/message"
)

// CommandHandlerFunc define a assinatura de todas as funções que lidam com
// comandos. Elas recebem a sessão e os bytes crus da mensagem.
type CommandHandlerFunc func(h *GameHandler, session *PlayerSession, data json.RawMessage)

// GameHandler implementa a interface network.EventHandler. Ele é o dono de
// todo o estado compartilhado do jogo: sessões, salas abertas, convites e
// partidas. Como o Hub chama os três métodos de evento sempre da mesma
// goroutine, nenhum campo aqui precisa de lock.
type GameHandler struct {
	sessions map[network.Messenger]*PlayerSession

	// Salas abertas (1 ou 2 membros, pré-partida), por id.
	rooms map[string]*OpenRoom

	// Convites pendentes: convidador -> convidado. No máximo um por
	// convidador E por convidado ao mesmo tempo, e só entre sessões que
	// estão no lobby: sair do lobby derruba os convites das duas pontas.
	invites map[*PlayerSession]*PlayerSession

	// Partidas ativas, por id.
	matches map[string]*Match

	// Contador global para nomes padrão (client<N>). Só cresce, nunca é
	// reaproveitado, mesmo depois de desconexões.
	nameCounter int

	events *events.Publisher

	// Um roteador por estado do jogador.
	lobbyRouter map[string]CommandHandlerFunc
	roomRouter  map[string]CommandHandlerFunc
	matchRouter map[string]CommandHandlerFunc
}

// NewGameHandler monta o handler e registra os roteadores de comando.
// O publisher de eventos pode ser nil (modo sem NATS).
func NewGameHandler(pub *events.Publisher) *GameHandler {
	h := &GameHandler{
		sessions:    make(map[network.Messenger]*PlayerSession),
		rooms:       make(map[string]*OpenRoom),
		invites:     make(map[*PlayerSession]*PlayerSession),
		matches:     make(map[string]*Match),
		nameCounter: 1,
		events:      pub,
		lobbyRouter: make(map[string]CommandHandlerFunc),
		roomRouter:  make(map[string]CommandHandlerFunc),
		matchRouter: make(map[string]CommandHandlerFunc),
	}
	h.registerLobbyHandlers()
	h.registerRoomHandlers()
	h.registerMatchHandlers()
	return h
}

// --- Implementação da interface network.EventHandler ---

// OnConnect cria a sessão. O jogador só entra na visão do lobby depois do
// handshake de nome.
func (h *GameHandler) OnConnect(c network.Messenger) {
	h.sessions[c] = NewPlayerSession(c)
	log.Printf("[GameHandler] session created for %s (total: %d)", c.RemoteAddr(), len(h.sessions))
}

// OnDisconnect executa o teardown completo, sempre exatamente uma vez por
// conexão (o Hub garante um único evento de desregistro).
func (h *GameHandler) OnDisconnect(c network.Messenger) {
	session, ok := h.sessions[c]
	if !ok {
		return
	}
	h.teardownSession(session)
	log.Printf("[GameHandler] session for %q removed (total: %d)", session.Name, len(h.sessions))
}

// OnMessage despacha pelo roteador do estado atual do jogador. Comando
// desconhecido ou inválido para o estado é descartado em silêncio: o
// cliente nunca recebe erro, por contrato do protocolo.
func (h *GameHandler) OnMessage(c network.Messenger, msg network.Message) {
	session, ok := h.sessions[c]
	if !ok {
		return
	}

	// Antes do handshake só o comando "name" é aceito.
	if session.Name == "" && msg.Type != message.TypeName {
		return
	}

	var router map[string]CommandHandlerFunc
	switch session.State {
	case state_LOBBY:
		router = h.lobbyRouter
	case state_IN_ROOM:
		router = h.roomRouter
	case state_IN_MATCH:
		router = h.matchRouter
	default:
		return
	}

	handler, found := router[msg.Type]
	if !found {
		log.Printf("[GameHandler] ignoring %q from %q in state %s", msg.Type, session.Name, session.State)
		return
	}
	handler(h, session, msg.Data)
}

// --- Teardown de desconexão ---

// teardownSession limpa todo rastro de um jogador. Cada passo roda mesmo
// que o anterior não tenha ninguém para notificar; entregas são sempre
// best-effort e nunca abortam a limpeza.
func (h *GameHandler) teardownSession(session *PlayerSession) {
	// 1. Convites pendentes em que o jogador é qualquer uma das partes.
	h.dropInvitesWith(session)

	// 2. Sala aberta da qual era membro (apaga a sala se ficou vazia).
	if session.State == state_IN_ROOM {
		h.removeFromOpenRoom(session)
	}

	// 3. Partida ativa: o oponente volta ao lobby e é avisado.
	if session.State == state_IN_MATCH {
		if m := h.matches[session.Room]; m != nil {
			h.teardownMatch(m, session, "opponent disconnected", false)
		}
	}

	// 4. O registro da própria sessão.
	delete(h.sessions, session.Client)

	// 5. Todo mundo que ficou vê a presença atualizada.
	h.broadcastLobby()
}

// dropInvitesWith apaga qualquer convite pendente que envolva a sessão,
// como convidador ou como convidado.
func (h *GameHandler) dropInvitesWith(session *PlayerSession) {
	delete(h.invites, session)
	for inviter, invitee := range h.invites {
		if invitee == session {
			delete(h.invites, inviter)
		}
	}
}

// findSessionByName procura uma sessão pelo nome de exibição. O mapa de
// sessões usa o Messenger como chave, então é uma varredura; para a escala
// de um lobby isso é irrelevante.
func (h *GameHandler) findSessionByName(name string) *PlayerSession {
	if name == "" {
		return nil
	}
	for _, session := range h.sessions {
		if session.Name == name {
			return session
		}
	}
	return nil
}
