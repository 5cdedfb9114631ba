package store

import (
	"time"

	"locaneon_back_end/internal/models"
)

// SeedProducts é o catálogo inicial do backend em memória, o mesmo acervo de
// equipamentos do mock original.
func SeedProducts() []models.Product {
	now := time.Now()
	mk := func(id, name, description string, price float64, stock int, category string, urls ...string) models.Product {
		return models.Product{
			ID:          id,
			Name:        name,
			Description: description,
			Price:       price,
			Stock:       stock,
			ImageURLs:   urls,
			Category:    category,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	return []models.Product{
		mk("1", "Drone de Corrida FPV",
			"Drone ultrarrápido para corridas FPV, com câmera de alta definição e chassi de fibra de carbono. Bateria de longa duração e controle preciso.",
			500.00, 15, "Drones",
			"https://picsum.photos/seed/drone/800/600",
			"https://picsum.photos/seed/drone2/800/600",
			"https://picsum.photos/seed/drone3/800/600"),
		mk("2", "Câmera 4K Profissional",
			"Grave vídeos com qualidade de cinema. Sensor full-frame, lentes intercambiáveis e gravação em 4K a 120fps.",
			750.00, 8, "Equipamento de Vídeo",
			"https://picsum.photos/seed/camera/800/600"),
		mk("3", "Kit de Iluminação LED RGB",
			"Conjunto com 3 painéis de LED RGB, tripés e difusores. Controle total de cor e intensidade via app.",
			250.00, 22, "Iluminação",
			"https://picsum.photos/seed/lights/800/600",
			"https://picsum.photos/seed/lights2/800/600"),
		mk("4", "Microfone de Lapela Sem Fio",
			"Sistema de microfone sem fio de alta qualidade para entrevistas e gravações. Áudio cristalino com alcance de 100m.",
			180.00, 30, "Equipamento de Áudio",
			"https://picsum.photos/seed/mic/800/600"),
		mk("5", "Mesa de Som Digital 16 Canais",
			"Mixer digital compacto com 16 canais, efeitos integrados e interface de áudio USB para gravação multicanal.",
			1000.00, 5, "Equipamento de Áudio",
			"https://picsum.photos/seed/mixer/800/600"),
		mk("6", "Estabilizador Gimbal 3 Eixos",
			"Gimbal profissional para câmeras DSLR e Mirrorless. Movimentos suaves e estabilizados para produções cinematográficas.",
			400.00, 12, "Equipamento de Vídeo",
			"https://picsum.photos/seed/gimbal/800/600",
			"https://picsum.photos/seed/gimbal2/800/600"),
	}
}
