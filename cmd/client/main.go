// Cliente de terminal para testes manuais contra o servidor. Não é a
// interface oficial do jogo, só uma forma rápida de exercitar o protocolo.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/gorilla/websocket"
)

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	addr := os.Getenv("DUELO_SERVER_ADDR")
	if addr == "" {
		addr = "localhost:8765"
	}
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}

	log.Printf("Conectando a %s", u.String())
	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Falha ao conectar: %v", err)
	}
	defer conn.Close()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("Seu nome (vazio para receber um padrão): ")
	scanner.Scan()
	send(conn, map[string]any{"type": "name", "name": strings.TrimSpace(scanner.Text())})

	done := make(chan struct{})
	go readLoop(conn, done)

	go func() {
		printHelp()
		for scanner.Scan() {
			handleInput(conn, scanner.Text())
		}
	}()

	select {
	case <-done:
		log.Println("Desconectado do servidor.")
	case <-interrupt:
		log.Println("Interrupção recebida, fechando conexão.")
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
}

func printHelp() {
	fmt.Print(`
--- Duelo ---
create                         abre uma sala
join <sala>                    entra em uma sala aberta
invite <nome>                  convida um jogador
accept <nome> / decline <nome> responde um convite
enter                          confirma o início da partida
leave                          sai da sala ou da partida
attack | block | load | standby  joga a rodada
reset                          pede revanche
say <msg>                      chat da partida
shout <msg>                    chat do lobby
-------------
`)
}

// handleInput traduz a linha digitada em uma mensagem do protocolo.
func handleInput(conn *websocket.Conn, line string) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "create":
		send(conn, map[string]any{"type": "create_room"})
	case "join":
		send(conn, map[string]any{"type": "join_room", "room_id": rest})
	case "invite":
		send(conn, map[string]any{"type": "invite", "to": rest})
	case "accept", "decline":
		send(conn, map[string]any{"type": "invite_response", "from": rest, "accepted": cmd == "accept"})
	case "enter":
		send(conn, map[string]any{"type": "enter_room"})
	case "leave":
		send(conn, map[string]any{"type": "leave_room"})
	case "attack", "block", "load", "standby":
		send(conn, map[string]any{"type": "submit", "action": cmd})
	case "reset":
		send(conn, map[string]any{"type": "reset"})
	case "say":
		send(conn, map[string]any{"type": "chat", "message": rest})
	case "shout":
		send(conn, map[string]any{"type": "lobby_chat", "message": rest})
	case "help":
		printHelp()
	case "":
	default:
		fmt.Println("Comando desconhecido. Digite 'help'.")
	}
}

func send(conn *websocket.Conn, msg map[string]any) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("Erro ao enviar mensagem: %v", err)
	}
}

func readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		var msg map[string]any
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("\nErro de leitura: %v", err)
			}
			return
		}
		printServerMessage(msg)
	}
}

// printServerMessage dá um formato legível para os tipos mais comuns e cai
// no JSON cru para o resto.
func printServerMessage(msg map[string]any) {
	switch msg["type"] {
	case "lobby_joined":
		fmt.Printf("\n[lobby] Você entrou como %v\n", msg["name"])
	case "lobby_update":
		fmt.Printf("\n[lobby] Jogadores: %v | Salas: %v\n", msg["users"], msg["open_rooms"])
	case "room_joined":
		fmt.Printf("\n[sala] Membros: %v\n", msg["usernames"])
	case "waiting":
		fmt.Println("\n[sala] Aguardando um oponente...")
	case "room_left":
		fmt.Println("\n[sala] Você voltou ao lobby.")
	case "invite_received":
		fmt.Printf("\n[convite] %v convidou você. (accept/decline %v)\n", msg["from"], msg["from"])
	case "invite_result":
		fmt.Printf("\n[convite] %v respondeu: aceito=%v\n", msg["from"], msg["accepted"])
	case "actions":
		fmt.Printf("\n[rodada] Você: %v | Oponente: %v\n", msg["your_action"], msg["opponent_action"])
	case "update":
		fmt.Printf("\n[rodada %v] %v hp=%v carga=%v bloqueio=%v | %v hp=%v carga=%v bloqueio=%v\n",
			msg["round"],
			msg["your_name"], msg["hp"], msg["loaded"], msg["block_points"],
			msg["opponent_name"], msg["opponent_hp"], msg["opponent_loaded"], msg["opponent_block_points"])
	case "game_over":
		if draw, _ := msg["draw"].(bool); draw {
			fmt.Println("\n[fim] Empate! (reset para revanche)")
		} else {
			fmt.Printf("\n[fim] Vencedor: %v (reset para revanche)\n", msg["winner"])
		}
	case "waiting_for_reset":
		fmt.Println("\n[fim] Aguardando o oponente aceitar a revanche...")
	case "chat":
		fmt.Printf("\n[chat] %v: %v\n", msg["sender"], msg["message"])
	case "lobby_chat":
		fmt.Printf("\n[lobby] %v: %v\n", msg["sender"], msg["message"])
	default:
		raw, _ := json.Marshal(msg)
		fmt.Printf("\n[servidor] %s\n", raw)
	}
}
