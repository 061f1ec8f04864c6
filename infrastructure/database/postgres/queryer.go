package postgres

import "database/sql"

// Queryer cobre as operações de leitura e escrita usadas pelo docstore.
// As assinaturas seguem as de *sql.DB para que Connection a satisfaça direto.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
