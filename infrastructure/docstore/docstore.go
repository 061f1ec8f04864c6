// Package docstore implementa um armazenamento de documentos sobre PostgreSQL,
// endereçado por caminho de coleção ("clients/{id}/websites") e id de documento.
package docstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lojalytics/dashboard-api/infrastructure/database/postgres"
	"github.com/sirupsen/logrus"
)

const documentsTable = "documents"

// Document é um registro genérico do armazenamento de metadados do tenant
type Document struct {
	ID        string
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Store interface {
	GetDocument(collectionPath, id string) (*Document, error)
	ListDocuments(collectionPath string) ([]*Document, error)
	SetDocument(collectionPath, id string, data map[string]any) error
	MergeDocument(collectionPath, id string, fields map[string]any) error
	DeleteDocument(collectionPath, id string) error
	DeleteCollection(collectionPath string, batchSize int) (int, error)
}

type store struct {
	conn postgres.Conn
}

func NewStore(conn postgres.Conn) Store {
	return &store{conn: conn}
}

// GetDocument retorna nil quando o documento não existe
func (s *store) GetDocument(collectionPath, id string) (*Document, error) {
	docSQL, docArgs, err := squirrel.
		Select("id, data, created_at, updated_at").
		From(documentsTable).
		Where(squirrel.Eq{"collection_path": collectionPath, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := s.conn.QueryRow(docSQL, docArgs...)

	doc, err := deserializeDocument(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return doc, nil
}

func (s *store) ListDocuments(collectionPath string) ([]*Document, error) {
	docsSQL, docsArgs, err := squirrel.
		Select("id, data, created_at, updated_at").
		From(documentsTable).
		Where(squirrel.Eq{"collection_path": collectionPath}).
		OrderBy("created_at ASC, id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.Query(docsSQL, docsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]*Document, 0)
	for rows.Next() {
		doc, err := deserializeDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// SetDocument grava o documento inteiro, substituindo o conteúdo anterior
func (s *store) SetDocument(collectionPath, id string, data map[string]any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("erro ao serializar documento %s/%s: %w", collectionPath, id, err)
	}

	docSQL, docArgs, err := squirrel.
		Insert(documentsTable).
		Columns("collection_path", "id", "data", "created_at", "updated_at").
		Values(collectionPath, id, payload, squirrel.Expr("NOW()"), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (collection_path, id) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(docSQL, docArgs...)
	return err
}

// MergeDocument aplica uma atualização parcial, preservando os campos não
// mencionados (semântica de merge de documento)
func (s *store) MergeDocument(collectionPath, id string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("erro ao serializar campos de %s/%s: %w", collectionPath, id, err)
	}

	docSQL, docArgs, err := squirrel.
		Update(documentsTable).
		Set("data", squirrel.Expr("data || ?::jsonb", payload)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"collection_path": collectionPath, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := s.conn.Exec(docSQL, docArgs...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (s *store) DeleteDocument(collectionPath, id string) error {
	docSQL, docArgs, err := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"collection_path": collectionPath, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.conn.Exec(docSQL, docArgs...)
	return err
}

// DeleteCollection remove todos os documentos da coleção em lotes, retornando
// o total removido. Usado pela exclusão em cascata de clientes: os filhos são
// removidos antes do documento pai para não deixar órfãos.
func (s *store) DeleteCollection(collectionPath string, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 100
	}

	total := 0
	for {
		batchSQL, batchArgs, err := squirrel.
			Delete(documentsTable).
			Where(squirrel.Expr(
				"id IN (SELECT id FROM documents WHERE collection_path = ? ORDER BY id LIMIT ?)",
				collectionPath, batchSize,
			)).
			Where(squirrel.Eq{"collection_path": collectionPath}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return total, err
		}

		result, err := s.conn.Exec(batchSQL, batchArgs...)
		if err != nil {
			return total, err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return total, err
		}

		total += int(affected)
		if affected < int64(batchSize) {
			break
		}

		logrus.WithFields(logrus.Fields{
			"collection_path": collectionPath,
			"deleted":         total,
		}).Debug("Lote de documentos removido, continuando exclusão da coleção")
	}

	return total, nil
}

func deserializeDocument(scan func(...any) error) (*Document, error) {
	var (
		doc     Document
		rawData []byte
	)

	if err := scan(&doc.ID, &rawData, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rawData, &doc.Data); err != nil {
		return nil, fmt.Errorf("erro ao desserializar documento %s: %w", doc.ID, err)
	}

	return &doc, nil
}
