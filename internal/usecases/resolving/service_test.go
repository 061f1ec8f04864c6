package resolving

import (
	"errors"
	"testing"

	"github.com/lojalytics/dashboard-api/infrastructure/repository/mocks"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		scope    domain.WebsiteScope
		fallback bool
		setup    func(repo *mocks.MockWebsiteRepository)
		validate func(t *testing.T, storeIDs []string, filtered bool, err error)
	}{
		{
			name:  "Escopo all_combined - não consulta o repositório e não filtra",
			scope: domain.AllWebsites(),
			setup: func(repo *mocks.MockWebsiteRepository) {},
			validate: func(t *testing.T, storeIDs []string, filtered bool, err error) {
				assert.NoError(t, err)
				assert.False(t, filtered)
				assert.Nil(t, storeIDs)
			},
		},
		{
			name:  "Website simples com store_id - resolve para uma única loja",
			scope: domain.WebsiteByID("site-br"),
			setup: func(repo *mocks.MockWebsiteRepository) {
				repo.EXPECT().
					GetWebsite("cli-1", "site-br").
					Return(&domain.Website{ID: "site-br", ClientID: "cli-1", StoreID: "loja-br"}, nil)
			},
			validate: func(t *testing.T, storeIDs []string, filtered bool, err error) {
				assert.NoError(t, err)
				assert.True(t, filtered)
				assert.Equal(t, []string{"loja-br"}, storeIDs)
			},
		},
		{
			name:  "Website simples sem store_id - resolve vazio e mantém o filtro",
			scope: domain.WebsiteByID("site-novo"),
			setup: func(repo *mocks.MockWebsiteRepository) {
				repo.EXPECT().
					GetWebsite("cli-1", "site-novo").
					Return(&domain.Website{ID: "site-novo", ClientID: "cli-1"}, nil)
			},
			validate: func(t *testing.T, storeIDs []string, filtered bool, err error) {
				assert.NoError(t, err)
				assert.True(t, filtered)
				assert.Empty(t, storeIDs)
			},
		},
		{
			name:  "Website inexistente sem modo de compatibilidade - resolve vazio",
			scope: domain.WebsiteByID("fantasma"),
			setup: func(repo *mocks.MockWebsiteRepository) {
				repo.EXPECT().
					GetWebsite("cli-1", "fantasma").
					Return(nil, nil)
			},
			validate: func(t *testing.T, storeIDs []string, filtered bool, err error) {
				assert.NoError(t, err)
				assert.True(t, filtered)
				assert.Empty(t, storeIDs)
			},
		},
		{
			name:     "Website inexistente com modo de compatibilidade - usa o identificador como store_id",
			scope:    domain.WebsiteByID("loja-legada"),
			fallback: true,
			setup: func(repo *mocks.MockWebsiteRepository) {
				repo.EXPECT().
					GetWebsite("cli-1", "loja-legada").
					Return(nil, nil)
			},
			validate: func(t *testing.T, storeIDs []string, filtered bool, err error) {
				assert.NoError(t, err)
				assert.True(t, filtered)
				assert.Equal(t, []string{"loja-legada"}, storeIDs)
			},
		},
		{
			name:  "Agrupamento - resolve os membros na ordem armazenada",
			scope: domain.WebsiteByID("grupo-global"),
			setup: func(repo *mocks.MockWebsiteRepository) {
				repo.EXPECT().
					GetWebsite("cli-1", "grupo-global").
					Return(&domain.Website{
						ID:                "grupo-global",
						ClientID:          "cli-1",
						IsGrouped:         true,
						GroupedWebsiteIDs: []string{"site-br", "site-us"},
					}, nil)
				repo.EXPECT().
					GetWebsite("cli-1", "site-br").
					Return(&domain.Website{ID: "site-br", StoreID: "loja-br"}, nil)
				repo.EXPECT().
					GetWebsite("cli-1", "site-us").
					Return(&domain.Website{ID: "site-us", StoreID: "loja-us"}, nil)
			},
			validate: func(t *testing.T, storeIDs []string, filtered bool, err error) {
				assert.NoError(t, err)
				assert.True(t, filtered)
				assert.Equal(t, []string{"loja-br", "loja-us"}, storeIDs)
			},
		},
		{
			name:  "Agrupamento com membro inexistente - pula o membro e resolve os demais",
			scope: domain.WebsiteByID("grupo-global"),
			setup: func(repo *mocks.MockWebsiteRepository) {
				repo.EXPECT().
					GetWebsite("cli-1", "grupo-global").
					Return(&domain.Website{
						ID:                "grupo-global",
						ClientID:          "cli-1",
						IsGrouped:         true,
						GroupedWebsiteIDs: []string{"site-br", "site-removido", "site-us"},
					}, nil)
				repo.EXPECT().
					GetWebsite("cli-1", "site-br").
					Return(&domain.Website{ID: "site-br", StoreID: "loja-br"}, nil)
				repo.EXPECT().
					GetWebsite("cli-1", "site-removido").
					Return(nil, nil)
				repo.EXPECT().
					GetWebsite("cli-1", "site-us").
					Return(&domain.Website{ID: "site-us", StoreID: "loja-us"}, nil)
			},
			validate: func(t *testing.T, storeIDs []string, filtered bool, err error) {
				assert.NoError(t, err)
				assert.True(t, filtered)
				assert.Equal(t, []string{"loja-br", "loja-us"}, storeIDs)
			},
		},
		{
			name:  "Agrupamento com membro sem store_id - pula o membro",
			scope: domain.WebsiteByID("grupo-global"),
			setup: func(repo *mocks.MockWebsiteRepository) {
				repo.EXPECT().
					GetWebsite("cli-1", "grupo-global").
					Return(&domain.Website{
						ID:                "grupo-global",
						ClientID:          "cli-1",
						IsGrouped:         true,
						GroupedWebsiteIDs: []string{"site-br", "site-sem-loja"},
					}, nil)
				repo.EXPECT().
					GetWebsite("cli-1", "site-br").
					Return(&domain.Website{ID: "site-br", StoreID: "loja-br"}, nil)
				repo.EXPECT().
					GetWebsite("cli-1", "site-sem-loja").
					Return(&domain.Website{ID: "site-sem-loja"}, nil)
			},
			validate: func(t *testing.T, storeIDs []string, filtered bool, err error) {
				assert.NoError(t, err)
				assert.True(t, filtered)
				assert.Equal(t, []string{"loja-br"}, storeIDs)
			},
		},
		{
			name:  "Erro do repositório - propaga o erro",
			scope: domain.WebsiteByID("site-br"),
			setup: func(repo *mocks.MockWebsiteRepository) {
				repo.EXPECT().
					GetWebsite("cli-1", "site-br").
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, storeIDs []string, filtered bool, err error) {
				assert.Error(t, err)
				assert.Nil(t, storeIDs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockWebsiteRepo := mocks.NewMockWebsiteRepository(ctrl)
			tt.setup(mockWebsiteRepo)

			service := &Service{
				websiteRepo:         mockWebsiteRepo,
				legacyStoreFallback: tt.fallback,
			}

			storeIDs, filtered, err := service.Resolve("cli-1", tt.scope)
			tt.validate(t, storeIDs, filtered, err)
		})
	}
}
