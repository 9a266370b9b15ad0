package network

import (
	"encoding/json"
)

// Message é o envelope padrão para toda mensagem que chega de um cliente.
// O protocolo é um objeto JSON "plano" por mensagem: o campo "type" seleciona
// a variante e os demais campos vivem no mesmo nível do objeto. Por isso o
// envelope guarda os bytes completos da mensagem: quem for tratar o comando
// decodifica Data na struct tipada correspondente ao Type.
type Message struct {
	// Type é o discriminador da variante ("submit", "invite", ...).
	Type string

	// Data são os bytes do objeto JSON inteiro, incluindo o "type".
	Data json.RawMessage
}

// MaxMessageSize é o limite de leitura por mensagem. Nenhum comando do jogo
// chega perto disso; acima do limite a conexão cai.
const MaxMessageSize = 64 * 1024

// decodeMessage extrai o discriminador de tipo de um objeto JSON bruto.
// Um JSON inválido ou sem campo "type" retorna false; o chamador descarta
// em silêncio (é a política do servidor para erros de protocolo).
func decodeMessage(raw []byte) (Message, bool) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil || head.Type == "" {
		return Message{}, false
	}
	return Message{Type: head.Type, Data: json.RawMessage(raw)}, true
}
