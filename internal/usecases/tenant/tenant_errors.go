package tenant

import "errors"

// Erros de validação e de ciclo de vida dos metadados do tenant
var (
	ErrClientNotFound       = errors.New("cliente não encontrado")
	ErrWebsiteNotFound      = errors.New("website não encontrado")
	ErrDocumentNotFound     = errors.New("documento não encontrado")
	ErrMissingRequiredData  = errors.New("dados obrigatórios ausentes")
	ErrGroupTooSmall        = errors.New("agrupamento precisa de pelo menos dois websites")
	ErrGroupMemberNotFound  = errors.New("membro do agrupamento não existe para o cliente")
	ErrNestedGroup          = errors.New("agrupamento não pode conter outro agrupamento")
	ErrGroupSelfReference   = errors.New("agrupamento não pode conter ele mesmo")
	ErrNotOwnerNorAdmin     = errors.New("apenas o autor ou um administrador pode remover o registro")
	ErrInviteExpired        = errors.New("convite expirado")
	ErrInviteAlreadyUsed    = errors.New("convite já aceito")
	ErrWebsiteAlreadyExists = errors.New("website já existe para o cliente")
)
