package session

import (
	"log"

	"duelo/internal/network"
)

// Constantes de estado da sessão para evitar erros de digitação.
const (
	state_LOBBY    = "lobby"    // conectado, fora de qualquer sala
	state_IN_ROOM  = "in-room"  // membro de uma sala aberta, pré-partida
	state_IN_MATCH = "in-match" // partida ativa
)

// PlayerSession representa um jogador único e conectado ao servidor.
type PlayerSession struct {
	Client network.Messenger

	// Name fica vazio até o handshake "name"; sessões sem nome não aparecem
	// no lobby e só podem mandar o próprio handshake.
	Name string

	// State usa as constantes acima e seleciona o roteador de comandos.
	State string

	// Room é o id da sala aberta ou da partida em que o jogador está.
	// É só uma referência de lookup; quem é dono das salas é o GameHandler.
	Room string
}

// NewPlayerSession cria e inicializa uma nova sessão de jogador.
func NewPlayerSession(client network.Messenger) *PlayerSession {
	return &PlayerSession{
		Client: client,
		State:  state_LOBBY,
	}
}

// InRoom informa se o jogador ocupa uma sala aberta ou uma partida.
func (s *PlayerSession) InRoom() bool {
	return s.State != state_LOBBY
}

// deliver envia um payload sem NUNCA bloquear a goroutine do hub: se o
// buffer de saída do cliente encheu, a mensagem é descartada e a conexão
// lenta acaba caindo sozinha pelo caminho de ping/pong.
func (s *PlayerSession) deliver(payload any) {
	select {
	case s.Client.Send() <- payload:
	default:
		log.Printf("[session] dropping message to %q: outbound buffer full", s.Name)
	}
}
