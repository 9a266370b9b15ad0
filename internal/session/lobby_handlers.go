package session

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"duelo/internal/session/message"
)

// OpenRoom é uma sala pré-partida: criada com um membro, vira partida quando
// os dois membros confirmam com enter_room. Members guarda nomes de exibição,
// em ordem de entrada.
type OpenRoom struct {
	ID      string
	Members []string
}

// roomIDFor é a convenção de id das salas abertas, visível no lobby.
func roomIDFor(owner string) string {
	return owner + "'s room"
}

// broadcastLobby envia a visão de presença para todos os clientes que já
// completaram o handshake. Deve ser chamado após QUALQUER mudança que afete
// presença: entrada/saída, sala aberta/fechada, convite aceito.
func (h *GameHandler) broadcastLobby() {
	users := make([]string, 0, len(h.sessions))
	for _, s := range h.sessions {
		if s.Name == "" {
			continue
		}
		label := s.Name
		if s.InRoom() {
			label += " (in room)"
		}
		users = append(users, label)
	}
	openRooms := make([]string, 0, len(h.rooms))
	for id := range h.rooms {
		openRooms = append(openRooms, id)
	}
	// Ordena só para os broadcasts serem determinísticos; o cliente trata
	// as listas como conjuntos.
	sort.Strings(users)
	sort.Strings(openRooms)

	update := message.CreateLobbyUpdate(users, openRooms)
	for _, s := range h.sessions {
		if s.Name == "" {
			continue
		}
		s.deliver(update)
	}
}

// handleName é o handshake. Nome não vazio é adotado como veio (aparado);
// sem nome o servidor atribui client<N> e confirma com lobby_joined. A
// confirmação só existe no caso do nome atribuído, como o cliente espera.
// O nome nunca muda depois do handshake.
func handleName(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	if session.Name != "" {
		return
	}

	var req message.NameRequest
	_ = json.Unmarshal(data, &req)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = fmt.Sprintf("client%d", h.nameCounter)
		h.nameCounter++ // nunca reutilizado nem decrementado
		session.Name = name
		session.deliver(message.CreateLobbyJoined(name))
	} else {
		session.Name = name
	}

	log.Printf("[GameHandler] %s joined the lobby as %q", session.Client.RemoteAddr(), session.Name)
	h.broadcastLobby()
}

// handleCreateRoom abre uma sala com o criador como único membro. Quem já
// está em sala, ou já tem a própria sala aberta, é ignorado em silêncio.
func handleCreateRoom(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	if session.InRoom() {
		return
	}
	id := roomIDFor(session.Name)
	if _, exists := h.rooms[id]; exists {
		return
	}

	h.rooms[id] = &OpenRoom{ID: id, Members: []string{session.Name}}
	session.State = state_IN_ROOM
	session.Room = id
	// Quem sai do lobby deixa de ser parte válida de qualquer convite.
	h.dropInvitesWith(session)

	// Lista de um membro só: o cliente entende como "aguardando oponente".
	session.deliver(message.CreateRoomJoined([]string{session.Name}))
	session.deliver(message.CreateWaiting())
	h.broadcastLobby()
}

// handleJoinRoom entra em uma sala aberta existente. Sala inexistente,
// cheia, ou pedido de quem já está em sala: tudo descartado em silêncio
// (a interface do cliente já impede esses casos; o servidor só garante).
func handleJoinRoom(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	if session.InRoom() {
		return
	}
	var req message.JoinRoomRequest
	if err := json.Unmarshal(data, &req); err != nil || req.RoomID == "" {
		return
	}
	room := h.rooms[req.RoomID]
	if room == nil || len(room.Members) >= 2 {
		return
	}

	room.Members = append(room.Members, session.Name)
	session.State = state_IN_ROOM
	session.Room = room.ID
	h.dropInvitesWith(session)

	// Ambos os membros recebem a lista completa; a partida em si só nasce
	// quando cada cliente confirmar com enter_room.
	joined := message.CreateRoomJoined(append([]string(nil), room.Members...))
	for _, name := range room.Members {
		if member := h.findSessionByName(name); member != nil {
			member.deliver(joined)
		}
	}
	h.broadcastLobby()
}

// handleInvite registra um convite direto. As regras de unicidade valem nos
// dois sentidos: um convite pendente por convidador E por convidado.
func handleInvite(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	var req message.InviteRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return
	}

	target := h.findSessionByName(req.To)
	if target == nil || target == session {
		return
	}
	if _, already := h.invites[session]; already {
		return
	}
	for _, invitee := range h.invites {
		if invitee == target {
			return
		}
	}

	h.invites[session] = target
	target.deliver(message.CreateInviteReceived(session.Name))
}

// handleInviteResponse resolve um convite pendente. O convidador é avisado
// do resultado; no aceite os dois entram em uma sala de dois membros e o
// fluxo segue igual ao de join_room (enter_room cria a partida).
func handleInviteResponse(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	var req message.InviteResponseRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return
	}

	inviter := h.findSessionByName(req.From)
	if inviter == nil {
		return
	}
	invitee, pending := h.invites[inviter]
	if !pending || invitee != session {
		return
	}
	// O convite morre aqui, aceito ou não.
	delete(h.invites, inviter)

	// Convite envelhecido: o convidador já saiu do lobby enquanto a resposta
	// viajava. Some em silêncio, sem tocar na sala ou partida dele.
	if inviter.InRoom() {
		return
	}

	inviter.deliver(message.CreateInviteResult(session.Name, req.Accepted))
	if !req.Accepted {
		return
	}

	id := roomIDFor(inviter.Name)
	h.rooms[id] = &OpenRoom{ID: id, Members: []string{inviter.Name, session.Name}}
	inviter.State, inviter.Room = state_IN_ROOM, id
	session.State, session.Room = state_IN_ROOM, id
	h.dropInvitesWith(inviter)
	h.dropInvitesWith(session)
	h.broadcastLobby()
}

// handleEnterRoom converte a sala de dois membros do chamador em partida.
// Os dois clientes mandam enter_room; o primeiro cria a partida e apaga a
// sala, o segundo não encontra mais nada e é ignorado. Isso é o comportamento
// esperado, não um erro.
func handleEnterRoom(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	room := h.rooms[session.Room]
	if room == nil || len(room.Members) != 2 {
		return
	}
	p1 := h.findSessionByName(room.Members[0])
	p2 := h.findSessionByName(room.Members[1])
	if p1 == nil || p2 == nil {
		return
	}

	delete(h.rooms, room.ID)
	h.startMatch(p1, p2)
}

// handleLeaveRoom devolve o jogador ao lobby, venha ele de uma sala aberta
// ou de uma partida ativa (caso em que o oponente também é liberado).
func handleLeaveRoom(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	switch session.State {
	case state_IN_MATCH:
		if m := h.matches[session.Room]; m != nil {
			h.teardownMatch(m, session, "opponent left the room", true)
		}
	case state_IN_ROOM:
		h.removeFromOpenRoom(session)
		session.deliver(message.CreateRoomLeft())
	default:
		return
	}
	h.broadcastLobby()
}

// removeFromOpenRoom tira o jogador da sala aberta em que estiver e apaga a
// sala quando ela fica vazia. Um segundo membro que sobre continua "in room",
// agora sozinho e aguardando, como um criador recém-chegado.
func (h *GameHandler) removeFromOpenRoom(session *PlayerSession) {
	room := h.rooms[session.Room]
	session.State = state_LOBBY
	session.Room = ""
	if room == nil {
		return
	}
	for i, name := range room.Members {
		if name == session.Name {
			room.Members = append(room.Members[:i], room.Members[i+1:]...)
			break
		}
	}
	if len(room.Members) == 0 {
		delete(h.rooms, room.ID)
	}
}

// handleLobbyChat retransmite a mensagem para todos os OUTROS clientes
// conectados; o eco local é do cliente.
func handleLobbyChat(h *GameHandler, session *PlayerSession, data json.RawMessage) {
	var req message.ChatRequest
	if err := json.Unmarshal(data, &req); err != nil || req.Message == "" {
		return
	}
	relay := message.CreateLobbyChat(session.Name, req.Message)
	for _, other := range h.sessions {
		if other == session || other.Name == "" {
			continue
		}
		other.deliver(relay)
	}
}

func (h *GameHandler) registerLobbyHandlers() {
	// O handshake e as ações de presença.
	h.lobbyRouter[message.TypeName] = handleName
	h.lobbyRouter[message.TypeCreateRoom] = handleCreateRoom
	h.lobbyRouter[message.TypeJoinRoom] = handleJoinRoom

	// Convites.
	h.lobbyRouter[message.TypeInvite] = handleInvite
	h.lobbyRouter[message.TypeInviteResponse] = handleInviteResponse

	// Chat geral.
	h.lobbyRouter[message.TypeLobbyChat] = handleLobbyChat
}

func (h *GameHandler) registerRoomHandlers() {
	// Dentro de uma sala aberta o jogador só confirma, desiste ou conversa.
	h.roomRouter[message.TypeEnterRoom] = handleEnterRoom
	h.roomRouter[message.TypeLeaveRoom] = handleLeaveRoom
	h.roomRouter[message.TypeLobbyChat] = handleLobbyChat
}
