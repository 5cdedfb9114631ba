package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locaneon_back_end/internal/models"
)

func TestFileServiceRoundTrip(t *testing.T) {
	svc := NewFileService(filepath.Join(t.TempDir(), "payment_settings.json"))

	saved := models.PaymentSettings{
		PixKey:           "merchant@bank.com",
		PixRecipientName: "LocaNeon Equipamentos",
		CardAPIKey:       "pk_live_cartao",
	}
	require.NoError(t, svc.Save(saved))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestFileServiceLoadBeforeFirstSave(t *testing.T) {
	svc := NewFileService(filepath.Join(t.TempDir(), "payment_settings.json"))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, models.PaymentSettings{}, loaded, "sem arquivo, todos os campos vazios")
}

func TestFileServiceLastWriteWins(t *testing.T) {
	svc := NewFileService(filepath.Join(t.TempDir(), "payment_settings.json"))

	require.NoError(t, svc.Save(models.PaymentSettings{PixKey: "primeira@chave.com", PixAPIKey: "auto-1"}))
	require.NoError(t, svc.Save(models.PaymentSettings{PixKey: "segunda@chave.com"}))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "segunda@chave.com", loaded.PixKey)
	assert.Empty(t, loaded.PixAPIKey, "a gravação é total, não um merge")
}
