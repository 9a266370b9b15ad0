package network

import (
	"log"
	"net"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Tempo para aguardar por uma escrita na conexão.
	writeWait = 10 * time.Second

	// Tempo máximo para aguardar por uma resposta de pong do cliente.
	pongWait = 60 * time.Second

	// Frequência com que enviamos pings. Deve ser menor que pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// Client é a representação de um jogador conectado do ponto de vista do
// servidor. Ele agrupa a conexão WebSocket e o canal de saída.
type Client struct {
	conn *websocket.Conn

	// Referência ao Hub central, usada para se (des)registrar.
	hub *Hub

	// Canal bufferizado para mensagens de saída. A camada de sessão coloca
	// os payloads aqui e a goroutine writeLoop os serializa na conexão.
	// O buffer evita que o Hub bloqueie em um cliente lento.
	send chan any
}

// Send expõe o canal de saída do cliente (implementa Messenger).
func (c *Client) Send() chan<- any { return c.send }

// RemoteAddr retorna o endereço do peer, para logs.
func (c *Client) RemoteAddr() net.Addr { return c.conn.RemoteAddr() }

// readLoop bombeia mensagens da conexão para o canal de entrada do Hub.
//
// Diferente do caminho feliz do ReadJSON, aqui lemos os bytes crus e
// decodificamos por conta própria: JSON malformado ou sem campo "type" é
// descartado SEM derrubar a conexão. Só erro de transporte encerra o loop.
func (c *Client) readLoop() {
	// Garante que a limpeza ocorrerá quando o loop terminar.
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	// Cada pong recebido renova o deadline de leitura, mantendo a conexão viva.
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[network] unexpected close from %s: %v", c.conn.RemoteAddr(), err)
			}
			// Qualquer erro de transporte (desconexão normal ou não) sai do loop.
			break
		}

		msg, ok := decodeMessage(raw)
		if !ok {
			// Erro de protocolo: ignora e segue lendo.
			continue
		}

		// Empacota a mensagem com o cliente que a enviou e entrega ao Hub.
		c.hub.incoming <- clientMessage{client: c, msg: msg}
	}
}

// writeLoop bombeia payloads do canal 'send' para a conexão WebSocket.
// Cada payload é uma struct de mensagem servidor->cliente com seu próprio
// campo "type"; WriteJSON cuida da serialização e do framing.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			// O canal foi fechado pelo Hub: o cliente foi desregistrado.
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(payload); err != nil {
				// Se a escrita falhar, encerramos a goroutine; o readLoop
				// vai falhar em seguida e disparar o desregistro.
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return // Ping falhou, a conexão está morta.
			}
		}
	}
}
