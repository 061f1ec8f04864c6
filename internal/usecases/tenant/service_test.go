package tenant

import (
	"errors"
	"testing"
	"time"

	"github.com/lojalytics/dashboard-api/infrastructure/repository/mocks"
	"github.com/lojalytics/dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockClientRepository, *mocks.MockWebsiteRepository, *mocks.MockAnnotationRepository, *mocks.MockInviteRepository) {
	clientRepo := mocks.NewMockClientRepository(ctrl)
	websiteRepo := mocks.NewMockWebsiteRepository(ctrl)
	annotationRepo := mocks.NewMockAnnotationRepository(ctrl)
	targetRepo := mocks.NewMockTargetRepository(ctrl)
	inviteRepo := mocks.NewMockInviteRepository(ctrl)

	service := &Service{
		clientRepo:     clientRepo,
		websiteRepo:    websiteRepo,
		annotationRepo: annotationRepo,
		targetRepo:     targetRepo,
		inviteRepo:     inviteRepo,
	}

	return service, clientRepo, websiteRepo, annotationRepo, inviteRepo
}

func TestService_CreateClient(t *testing.T) {
	t.Run("Moeda ausente - assume BRL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, clientRepo, _, _, _ := newTestService(ctrl)
		clientRepo.EXPECT().
			SaveClient(gomock.Any()).
			DoAndReturn(func(client *domain.Client) error {
				assert.NotEmpty(t, client.ID)
				assert.Equal(t, "BRL", client.ReportingCurrency)
				return nil
			})

		client, err := service.CreateClient(&domain.CreateClientRequest{
			Name:      "Ótica Central",
			DatasetID: "otica_analytics",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Ótica Central", client.Name)
	})

	t.Run("Sem nome ou dataset - rejeita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, _ := newTestService(ctrl)

		_, err := service.CreateClient(&domain.CreateClientRequest{Name: "Sem Dataset"})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_DeleteClient(t *testing.T) {
	t.Run("Exclui as subcoleções antes do documento do cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, clientRepo, _, _, _ := newTestService(ctrl)

		clientRepo.EXPECT().
			GetClient("cli-1").
			Return(&domain.Client{ID: "cli-1"}, nil)
		subcollections := clientRepo.EXPECT().
			DeleteSubcollections("cli-1").
			Return(nil)
		clientRepo.EXPECT().
			DeleteClient("cli-1").
			After(subcollections).
			Return(nil)

		assert.NoError(t, service.DeleteClient("cli-1"))
	})

	t.Run("Falha na cascata - o documento do cliente fica intacto", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, clientRepo, _, _, _ := newTestService(ctrl)

		clientRepo.EXPECT().
			GetClient("cli-1").
			Return(&domain.Client{ID: "cli-1"}, nil)
		clientRepo.EXPECT().
			DeleteSubcollections("cli-1").
			Return(errors.New("lote interrompido"))

		assert.Error(t, service.DeleteClient("cli-1"))
	})

	t.Run("Cliente inexistente - retorna not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, clientRepo, _, _, _ := newTestService(ctrl)
		clientRepo.EXPECT().GetClient("fantasma").Return(nil, nil)

		assert.ErrorIs(t, service.DeleteClient("fantasma"), ErrClientNotFound)
	})
}

func TestService_CreateWebsite_Grouping(t *testing.T) {
	tests := []struct {
		name  string
		req   *domain.CreateWebsiteRequest
		setup func(clientRepo *mocks.MockClientRepository, websiteRepo *mocks.MockWebsiteRepository)
		err   error
	}{
		{
			name: "Agrupamento com um único membro - rejeita",
			req: &domain.CreateWebsiteRequest{
				ID:                "grupo-1",
				Name:              "Grupo Solitário",
				IsGrouped:         true,
				GroupedWebsiteIDs: []string{"site-br"},
			},
			setup: func(clientRepo *mocks.MockClientRepository, websiteRepo *mocks.MockWebsiteRepository) {
				clientRepo.EXPECT().GetClient("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)
				websiteRepo.EXPECT().GetWebsite("cli-1", "grupo-1").Return(nil, nil)
			},
			err: ErrGroupTooSmall,
		},
		{
			name: "Agrupamento referenciando a si mesmo - rejeita",
			req: &domain.CreateWebsiteRequest{
				ID:                "grupo-1",
				Name:              "Grupo Recursivo",
				IsGrouped:         true,
				GroupedWebsiteIDs: []string{"grupo-1", "site-br"},
			},
			setup: func(clientRepo *mocks.MockClientRepository, websiteRepo *mocks.MockWebsiteRepository) {
				clientRepo.EXPECT().GetClient("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)
				websiteRepo.EXPECT().GetWebsite("cli-1", "grupo-1").Return(nil, nil)
			},
			err: ErrGroupSelfReference,
		},
		{
			name: "Agrupamento com membro inexistente - rejeita",
			req: &domain.CreateWebsiteRequest{
				ID:                "grupo-1",
				Name:              "Grupo Incompleto",
				IsGrouped:         true,
				GroupedWebsiteIDs: []string{"site-br", "site-fantasma"},
			},
			setup: func(clientRepo *mocks.MockClientRepository, websiteRepo *mocks.MockWebsiteRepository) {
				clientRepo.EXPECT().GetClient("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)
				websiteRepo.EXPECT().GetWebsite("cli-1", "grupo-1").Return(nil, nil)
				websiteRepo.EXPECT().GetWebsite("cli-1", "site-br").Return(&domain.Website{ID: "site-br", StoreID: "loja-br"}, nil)
				websiteRepo.EXPECT().GetWebsite("cli-1", "site-fantasma").Return(nil, nil)
			},
			err: ErrGroupMemberNotFound,
		},
		{
			name: "Agrupamento contendo outro agrupamento - rejeita aninhamento",
			req: &domain.CreateWebsiteRequest{
				ID:                "grupo-1",
				Name:              "Grupo de Grupos",
				IsGrouped:         true,
				GroupedWebsiteIDs: []string{"site-br", "grupo-2"},
			},
			setup: func(clientRepo *mocks.MockClientRepository, websiteRepo *mocks.MockWebsiteRepository) {
				clientRepo.EXPECT().GetClient("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)
				websiteRepo.EXPECT().GetWebsite("cli-1", "grupo-1").Return(nil, nil)
				websiteRepo.EXPECT().GetWebsite("cli-1", "site-br").Return(&domain.Website{ID: "site-br", StoreID: "loja-br"}, nil)
				websiteRepo.EXPECT().GetWebsite("cli-1", "grupo-2").Return(&domain.Website{ID: "grupo-2", IsGrouped: true}, nil)
			},
			err: ErrNestedGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, clientRepo, websiteRepo, _, _ := newTestService(ctrl)
			tt.setup(clientRepo, websiteRepo)

			_, err := service.CreateWebsite("cli-1", tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("Agrupamento válido - grava sem store_id próprio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, clientRepo, websiteRepo, _, _ := newTestService(ctrl)

		clientRepo.EXPECT().GetClient("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)
		websiteRepo.EXPECT().GetWebsite("cli-1", "grupo-global").Return(nil, nil)
		websiteRepo.EXPECT().GetWebsite("cli-1", "site-br").Return(&domain.Website{ID: "site-br", StoreID: "loja-br"}, nil)
		websiteRepo.EXPECT().GetWebsite("cli-1", "site-us").Return(&domain.Website{ID: "site-us", StoreID: "loja-us"}, nil)
		websiteRepo.EXPECT().
			SaveWebsite(gomock.Any()).
			DoAndReturn(func(website *domain.Website) error {
				assert.Empty(t, website.StoreID)
				assert.True(t, website.IsGrouped)
				return nil
			})

		website, err := service.CreateWebsite("cli-1", &domain.CreateWebsiteRequest{
			ID:                "grupo-global",
			Name:              "Grupo Global",
			StoreID:           "loja-fantasma",
			IsGrouped:         true,
			GroupedWebsiteIDs: []string{"site-br", "site-us"},
		})

		assert.NoError(t, err)
		assert.Empty(t, website.StoreID)
	})

	t.Run("Website com ID já existente - rejeita duplicata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, clientRepo, websiteRepo, _, _ := newTestService(ctrl)

		clientRepo.EXPECT().GetClient("cli-1").Return(&domain.Client{ID: "cli-1"}, nil)
		websiteRepo.EXPECT().GetWebsite("cli-1", "site-br").Return(&domain.Website{ID: "site-br"}, nil)

		_, err := service.CreateWebsite("cli-1", &domain.CreateWebsiteRequest{
			ID:   "site-br",
			Name: "Loja BR",
		})

		assert.ErrorIs(t, err, ErrWebsiteAlreadyExists)
	})
}

func TestService_DeleteAnnotation(t *testing.T) {
	annotation := &domain.Annotation{
		ID:        "anot-1",
		ClientID:  "cli-1",
		CreatedBy: "user-autor",
	}

	tests := []struct {
		name      string
		principal domain.Principal
		err       error
	}{
		{
			name:      "Autor da anotação - pode remover",
			principal: domain.Principal{UID: "user-autor", Role: domain.RoleClient},
		},
		{
			name:      "Administrador - pode remover anotação de terceiro",
			principal: domain.Principal{UID: "user-admin", Role: domain.RoleAdmin},
		},
		{
			name:      "Usuário comum que não é o autor - rejeita",
			principal: domain.Principal{UID: "user-outro", Role: domain.RoleClient},
			err:       ErrNotOwnerNorAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, _, _, annotationRepo, _ := newTestService(ctrl)

			annotationRepo.EXPECT().
				GetAnnotation("cli-1", "anot-1").
				Return(annotation, nil)
			if tt.err == nil {
				annotationRepo.EXPECT().
					DeleteAnnotation("cli-1", "anot-1").
					Return(nil)
			}

			err := service.DeleteAnnotation(tt.principal, "cli-1", "anot-1")
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_AcceptInvite(t *testing.T) {
	t.Run("Convite válido - marca como aceito", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, inviteRepo := newTestService(ctrl)

		inviteRepo.EXPECT().
			GetInvite("conv-1").
			Return(&domain.Invite{
				ID:        "conv-1",
				Email:     "novo@lojalytics.com",
				Role:      domain.RoleClient,
				ClientID:  "cli-1",
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil)
		inviteRepo.EXPECT().
			SaveInvite(gomock.Any()).
			DoAndReturn(func(invite *domain.Invite) error {
				assert.True(t, invite.Accepted)
				return nil
			})

		invite, err := service.AcceptInvite("conv-1")

		assert.NoError(t, err)
		assert.True(t, invite.Accepted)
	})

	t.Run("Convite já aceito - rejeita reutilização", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, inviteRepo := newTestService(ctrl)

		inviteRepo.EXPECT().
			GetInvite("conv-1").
			Return(&domain.Invite{
				ID:        "conv-1",
				Accepted:  true,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil)

		_, err := service.AcceptInvite("conv-1")
		assert.ErrorIs(t, err, ErrInviteAlreadyUsed)
	})

	t.Run("Convite expirado - rejeita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, inviteRepo := newTestService(ctrl)

		inviteRepo.EXPECT().
			GetInvite("conv-1").
			Return(&domain.Invite{
				ID:        "conv-1",
				ExpiresAt: time.Now().Add(-time.Hour),
			}, nil)

		_, err := service.AcceptInvite("conv-1")
		assert.ErrorIs(t, err, ErrInviteExpired)
	})

	t.Run("Convite inexistente - retorna not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, inviteRepo := newTestService(ctrl)
		inviteRepo.EXPECT().GetInvite("fantasma").Return(nil, nil)

		_, err := service.AcceptInvite("fantasma")
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})
}

func TestService_CreateInvite(t *testing.T) {
	t.Run("Convite de cliente sem client_id - rejeita", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, _ := newTestService(ctrl)

		_, err := service.CreateInvite(&domain.Invite{
			Email: "novo@lojalytics.com",
			Role:  domain.RoleClient,
		})
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Convite válido - define validade e estado pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service, _, _, _, inviteRepo := newTestService(ctrl)

		inviteRepo.EXPECT().
			SaveInvite(gomock.Any()).
			DoAndReturn(func(invite *domain.Invite) error {
				assert.NotEmpty(t, invite.ID)
				assert.False(t, invite.Accepted)
				assert.True(t, invite.ExpiresAt.After(time.Now()))
				return nil
			})

		invite, err := service.CreateInvite(&domain.Invite{
			Email:    "novo@lojalytics.com",
			Role:     domain.RoleClient,
			ClientID: "cli-1",
		})

		assert.NoError(t, err)
		assert.False(t, invite.Accepted)
	})
}
