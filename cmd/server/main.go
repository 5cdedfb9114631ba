package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"locaneon_back_end/internal/auth"
	"locaneon_back_end/internal/cart"
	"locaneon_back_end/internal/checkout"
	"locaneon_back_end/internal/config"
	"locaneon_back_end/internal/database"
	"locaneon_back_end/internal/payment"
	"locaneon_back_end/internal/routes"
	"locaneon_back_end/internal/settings"
	"locaneon_back_end/internal/store"
)

func main() {
	config.Load()
	database.Connect()

	catalog, orders := buildStores()

	var carts cart.Manager
	if database.Redis != nil {
		carts = cart.NewRedisManager(database.Redis)
		log.Println("✅ Carrinho persistido no Redis")
	} else {
		carts = cart.NewMemoryManager()
		log.Println("✅ Carrinho em memória (sem durabilidade)")
	}

	settingsService := settings.NewFileService(config.Env("SETTINGS_FILE", "payment_settings.json"))
	authenticator := auth.NewEnvAuthenticator()
	processor := payment.NewSimulatedProcessor(orders)

	pipeline := checkout.NewPipeline(
		carts, catalog, orders, processor, settingsService,
		config.Env("ADMIN_WHATSAPP", "5521984791222"),
	)

	r := gin.Default()
	routes.Register(r, routes.Deps{
		Catalog:       catalog,
		Orders:        orders,
		Carts:         carts,
		Pipeline:      pipeline,
		Settings:      settingsService,
		Authenticator: authenticator,
		SessionSecret: config.Env("SESSION_SECRET", "locaneon_dev_secret"),
	})

	port := config.Env("PORT", "8080")
	log.Println("🚀 Servidor LocaNeon ouvindo na porta", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Servidor encerrou com erro: %v", err)
	}
}

// buildStores escolhe o backend de catálogo/pedidos conforme o ambiente.
// O padrão em memória já sobe semeado com o acervo de demonstração; a latência
// artificial do mock original fica disponível via MOCK_LATENCY_MS.
func buildStores() (store.Catalog, store.Orders) {
	var catalog store.Catalog
	var orders store.Orders

	if os.Getenv("STORE_BACKEND") == "scylla" {
		catalog = store.NewScyllaCatalog(database.Scylla)
		orders = store.NewScyllaOrders(database.Scylla)
		log.Println("✅ Catálogo e pedidos no ScyllaDB")
	} else {
		catalog = store.NewMemoryCatalog(store.SeedProducts())
		orders = store.NewMemoryOrders()
		log.Println("✅ Catálogo e pedidos em memória (mock)")
	}

	if ms, err := strconv.Atoi(os.Getenv("MOCK_LATENCY_MS")); err == nil && ms > 0 {
		d := time.Duration(ms) * time.Millisecond
		catalog = store.WithCatalogLatency(catalog, d)
		orders = store.WithOrdersLatency(orders, d)
		log.Printf("⚠️  Latência artificial de %v ativada nos stores", d)
	}

	return catalog, orders
}
