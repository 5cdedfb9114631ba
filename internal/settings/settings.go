package settings

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"locaneon_back_end/internal/models"
)

// Service expõe carga e gravação explícitas das configurações de pagamento,
// em vez do acesso ambiente via localStorage que o storefront original fazia.
type Service interface {
	Load() (models.PaymentSettings, error)
	Save(models.PaymentSettings) error
}

// FileService guarda o blob inteiro num arquivo JSON local do dispositivo.
// Gravação total a cada Save, último a escrever vence, sem versionamento.
type FileService struct {
	mu   sync.Mutex
	path string
}

func NewFileService(path string) *FileService {
	return &FileService{path: path}
}

func (s *FileService) Load() (models.PaymentSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg models.PaymentSettings
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		// nunca salvo ainda: todos os campos vazios
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return models.PaymentSettings{}, err
	}
	return cfg, nil
}

func (s *FileService) Save(cfg models.PaymentSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
