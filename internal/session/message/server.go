package message

// Isso aqui são as mensagens que vão no sentido servidor -> cliente.
// Cada struct carrega o próprio campo "type"; a writeLoop do cliente faz
// WriteJSON direto no payload, sem envelope intermediário.

// LobbyJoined confirma o handshake quando o servidor teve que atribuir um
// nome padrão (o cliente não mandou nome). Não é enviada quando o nome veio
// do próprio cliente.
type LobbyJoined struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func CreateLobbyJoined(name string) LobbyJoined {
	return LobbyJoined{Type: "lobby_joined", Name: name}
}

// LobbyUpdate é a visão de presença: todos os nomes conhecidos (sufixados
// com " (in room)" quando for o caso) e os IDs das salas abertas.
type LobbyUpdate struct {
	Type      string   `json:"type"`
	Users     []string `json:"users"`
	OpenRooms []string `json:"open_rooms"`
}

func CreateLobbyUpdate(users, openRooms []string) LobbyUpdate {
	return LobbyUpdate{Type: "lobby_update", Users: users, OpenRooms: openRooms}
}

// RoomJoined confirma entrada em sala. Com um único nome na lista o cliente
// interpreta como "aguardando oponente".
type RoomJoined struct {
	Type      string   `json:"type"`
	Usernames []string `json:"usernames"`
}

func CreateRoomJoined(usernames []string) RoomJoined {
	return RoomJoined{Type: "room_joined", Usernames: usernames}
}

// RoomLeft avisa que o destinatário saiu (ou foi devolvido) da sala/partida.
type RoomLeft struct {
	Type string `json:"type"`
}

func CreateRoomLeft() RoomLeft {
	return RoomLeft{Type: "room_left"}
}

// Waiting sinaliza que o jogador está sozinho em uma sala aberta.
type Waiting struct {
	Type string `json:"type"`
}

func CreateWaiting() Waiting {
	return Waiting{Type: "waiting"}
}

type InviteReceived struct {
	Type string `json:"type"`
	From string `json:"from"`
}

func CreateInviteReceived(from string) InviteReceived {
	return InviteReceived{Type: "invite_received", From: from}
}

type InviteResult struct {
	Type     string `json:"type"`
	From     string `json:"from"`
	Accepted bool   `json:"accepted"`
}

func CreateInviteResult(from string, accepted bool) InviteResult {
	return InviteResult{Type: "invite_result", From: from, Accepted: accepted}
}

// WaitingForReset confirma um pedido de revanche enquanto o oponente ainda
// não pediu o dele.
type WaitingForReset struct {
	Type string `json:"type"`
}

func CreateWaitingForReset() WaitingForReset {
	return WaitingForReset{Type: "waiting_for_reset"}
}

// Update é o broadcast completo de estado de batalha, do ponto de vista do
// destinatário (hp dele, hp do oponente, e assim por diante).
type Update struct {
	Type                string `json:"type"`
	HP                  int    `json:"hp"`
	OpponentHP          int    `json:"opponent_hp"`
	Loaded              bool   `json:"loaded"`
	OpponentLoaded      bool   `json:"opponent_loaded"`
	BlockPoints         int    `json:"block_points"`
	OpponentBlockPoints int    `json:"opponent_block_points"`
	Round               int    `json:"round"`
	YourName            string `json:"your_name"`
	OpponentName        string `json:"opponent_name"`
}

// Actions revela as duas ações cruas da rodada recém-resolvida. É enviada
// ANTES do Update correspondente, para o cliente narrar a jogada.
type Actions struct {
	Type           string `json:"type"`
	YourAction     string `json:"your_action"`
	OpponentAction string `json:"opponent_action"`
}

func CreateActions(yours, opponents string) Actions {
	return Actions{Type: "actions", YourAction: yours, OpponentAction: opponents}
}

// GameOver encerra a partida. Num duplo nocaute Winner fica vazio e Draw
// verdadeiro; o servidor nunca escolhe um vencedor arbitrário.
type GameOver struct {
	Type   string `json:"type"`
	Winner string `json:"winner"`
	Draw   bool   `json:"draw"`
}

func CreateGameOver(winner string, draw bool) GameOver {
	return GameOver{Type: "game_over", Winner: winner, Draw: draw}
}

// Chat é o relay de chat dentro da partida. Nunca ecoa para o remetente;
// o eco local é responsabilidade do cliente.
type Chat struct {
	Type    string `json:"type"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

func CreateChat(sender, text string) Chat {
	return Chat{Type: "chat", Sender: sender, Message: text}
}

// LobbyChat é o chat geral do lobby, retransmitido para todos os outros
// clientes conectados.
type LobbyChat struct {
	Type    string `json:"type"`
	Sender  string `json:"sender"`
	Message string `json:"message"`
}

func CreateLobbyChat(sender, text string) LobbyChat {
	return LobbyChat{Type: "lobby_chat", Sender: sender, Message: text}
}
