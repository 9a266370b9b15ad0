package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"duelo/internal/network"
	"duelo/internal/services/cluster"
	"duelo/internal/services/events"
	"duelo/internal/session"
)

// Padrões de configuração. Tudo pode ser sobrescrito por variável de
// ambiente; NATS e Consul são opcionais e ficam desligados sem endereço.
const (
	defaultServiceName = "duelo-server"
	defaultServicePort = 8765
	defaultHealthPort  = 8766
)

// Config armazena todas as configurações da aplicação.
type Config struct {
	ServiceName string
	ServicePort int
	HealthPort  int

	// Vazios desligam a integração correspondente.
	NatsURL    string
	ConsulAddr string
}

// loadConfig carrega a configuração a partir de variáveis de ambiente.
func loadConfig() (*Config, error) {
	cfg := &Config{
		ServiceName: os.Getenv("DUELO_SERVICE_NAME"),
		NatsURL:     os.Getenv("NATS_URL"),
		ConsulAddr:  os.Getenv("CONSUL_HTTP_ADDR"),
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	var err error
	if cfg.ServicePort, err = portFromEnv("DUELO_SERVICE_PORT", defaultServicePort); err != nil {
		return nil, err
	}
	if cfg.HealthPort, err = portFromEnv("DUELO_HEALTH_PORT", defaultHealthPort); err != nil {
		return nil, err
	}
	return cfg, nil
}

func portFromEnv(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("formato de %s inválido: %w", name, err)
	}
	return port, nil
}

func main() {
	// 1. CARREGA A CONFIGURAÇÃO
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Fatal: Falha ao carregar configuração: %v", err)
	}
	log.Printf("[Main] Configuração carregada: ServiceName=%s, Port=%d, HealthPort=%d",
		cfg.ServiceName, cfg.ServicePort, cfg.HealthPort)

	// 2. EVENTOS (OPCIONAL)
	var publisher *events.Publisher
	if cfg.NatsURL != "" {
		publisher, err = events.Connect(cfg.NatsURL)
		if err != nil {
			// O jogo funciona igual sem o NATS; só perde os eventos.
			log.Printf("[Main] NATS indisponível (%v), seguindo sem eventos", err)
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// 3. MONTA O JOGO E O SERVIDOR DE REDE
	gameHandler := session.NewGameHandler(publisher)
	server := network.NewServer(gameHandler)
	log.Println("[Main] GameHandler e servidor de rede criados.")

	// 4. CLUSTER (OPCIONAL)
	if cfg.ConsulAddr != "" {
		cluster.ServeHealth(cfg.HealthPort)
		if err := cluster.RegisterService(cfg.ConsulAddr, cfg.ServiceName, cfg.ServicePort, cfg.HealthPort); err != nil {
			log.Fatalf("Fatal: Falha ao registrar serviço no Consul: %v", err)
		}
		log.Printf("[Main] Serviço %q registrado no Consul.", cfg.ServiceName)
	}

	// 5. INICIA O SERVIDOR PRINCIPAL (bloqueante)
	address := fmt.Sprintf("0.0.0.0:%d", cfg.ServicePort)
	log.Printf("[Main] Servidor principal iniciado em %s.", address)
	if err := server.Listen(address); err != nil {
		log.Fatalf("Falha fatal ao iniciar o servidor de rede: %v", err)
	}
}
