package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"locaneon_back_end/internal/database"
	"locaneon_back_end/internal/models"
)

const productIndex = "products"

// IndexProduct indexa (ou reindexa) um produto no Elasticsearch. Chamada em
// goroutine pelos handlers de admin; sem cliente configurado vira no-op.
func IndexProduct(p models.Product) {
	if database.Elastic == nil {
		return
	}

	data, _ := json.Marshal(p)
	req := esapi.IndexRequest{
		Index:      productIndex,
		DocumentID: p.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erro enviando produto ao Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic retornou erro para %s: %s", p.Name, res.String())
	}
}

// RemoveProduct tira o produto do índice depois de um delete no catálogo.
func RemoveProduct(productID string) {
	if database.Elastic == nil {
		return
	}

	req := esapi.DeleteRequest{Index: productIndex, DocumentID: productID}
	res, err := req.Do(context.Background(), database.Elastic)
	if err != nil {
		log.Println("❌ Erro removendo produto do Elastic:", err)
		return
	}
	res.Body.Close()
}

// SearchProducts busca por nome, descrição ou categoria via multi_match.
// Devolve erro quando o Elastic não está configurado, para o handler cair no
// filtro em memória.
func SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	if database.Elastic == nil {
		return nil, errors.New("cliente Elasticsearch não inicializado")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "category"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erro codificando consulta: %w", err)
	}

	req := esapi.SearchRequest{
		Index: []string{productIndex},
		Body:  &buf,
	}
	res, err := req.Do(ctx, database.Elastic)
	if err != nil {
		return nil, fmt.Errorf("erro na consulta Elastic: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.New("índice não encontrado ou vazio")
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erro decodificando resposta: %w", err)
	}

	results := make([]models.Product, 0, len(r.Hits.Hits))
	for _, hit := range r.Hits.Hits {
		results = append(results, hit.Source)
	}
	return results, nil
}
