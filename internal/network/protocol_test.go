package network

import "testing"

func TestDecodeMessage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantType string
		wantOK   bool
	}{
		{"simple command", `{"type":"reset"}`, "reset", true},
		{"command with fields", `{"type":"submit","action":"attack"}`, "submit", true},
		{"type not first", `{"action":"attack","type":"submit"}`, "submit", true},
		{"missing type", `{"action":"attack"}`, "", false},
		{"empty type", `{"type":""}`, "", false},
		{"type wrong kind", `{"type":42}`, "", false},
		{"invalid json", `{"type":"submit`, "", false},
		{"not an object", `"submit"`, "", false},
		{"empty input", ``, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := decodeMessage([]byte(tt.raw))
			if ok != tt.wantOK {
				t.Fatalf("decodeMessage(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if msg.Type != tt.wantType {
				t.Errorf("type = %q, want %q", msg.Type, tt.wantType)
			}
			// Data precisa carregar o objeto inteiro para a decodificação
			// tipada do handler.
			if string(msg.Data) != tt.raw {
				t.Errorf("data = %s, want the full raw object", msg.Data)
			}
		})
	}
}
