package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
)

// Clientes globais. Todos opcionais: o backend em memória funciona sem nenhum
// deles, e cada consumidor trata o cliente nil como "recurso ausente".
var (
	Redis   *redis.Client
	Elastic *elasticsearch.Client
	Scylla  *gocql.Session
)

// Connect inicializa os clientes externos configurados via ambiente.
func Connect() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectRedis(ctx)
	connectElastic()
	if os.Getenv("STORE_BACKEND") == "scylla" {
		if err := connectScylla(); err != nil {
			log.Fatalf("❌ Falha ao inicializar ScyllaDB: %v", err)
		}
	}
}

func connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️  REDIS_ADDR não definido — carrinho e cache ficam em memória")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis inacessível (%v) — seguindo sem cache", err)
		return
	}

	Redis = client
	log.Println("✅ Redis conectado:", addr)
}

func connectElastic() {
	url := os.Getenv("ELASTIC_URL")
	if url == "" {
		log.Println("⚠️  ELASTIC_URL não definido — busca cai no filtro em memória")
		return
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	})
	if err != nil {
		log.Printf("⚠️  Erro criando cliente Elasticsearch: %v", err)
		return
	}

	Elastic = client
	log.Println("✅ Elasticsearch configurado:", url)
}

func connectScylla() error {
	hosts := strings.Split(os.Getenv("SCYLLA_HOSTS"), ",")
	keyspace := os.Getenv("SCYLLA_KEYSPACE")
	if keyspace == "" {
		keyspace = "locaneon"
	}

	cluster := gocql.NewCluster(hosts...)
	cluster.Keyspace = keyspace
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 10 * time.Second
	if user := os.Getenv("SCYLLA_USER"); user != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: user,
			Password: os.Getenv("SCYLLA_PASSWORD"),
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return err
	}

	Scylla = session
	log.Println("✅ ScyllaDB conectado, keyspace:", keyspace)
	return nil
}
