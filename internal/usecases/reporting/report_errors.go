package reporting

import "errors"

// Erros de validação e execução dos relatórios
var (
	ErrMissingDataset   = errors.New("dataset do cliente é obrigatório")
	ErrMissingClient    = errors.New("cliente é obrigatório")
	ErrInvalidDateRange = errors.New("intervalo de datas inválido")
	ErrInvalidOrderType = errors.New("order_type deve ser main ou sample")
	ErrQueryFailed      = errors.New("falha na consulta ao warehouse")
)
