package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/imfops/gadget-api/internal/facades"
	"github.com/imfops/gadget-api/internal/models"
	"github.com/imfops/gadget-api/internal/repositories"
	"github.com/imfops/gadget-api/internal/services"
)

type gadgetMocks struct {
	reader *services.MockGadgetReader
	writer *services.MockGadgetWriter
	codes  *services.MockCodeStore
	gen    *services.MockCodeGenerator
	events *services.MockEventPublisher
}

func newGadgetService(ctrl *gomock.Controller) (*services.GadgetService, gadgetMocks) {
	m := gadgetMocks{
		reader: services.NewMockGadgetReader(ctrl),
		writer: services.NewMockGadgetWriter(ctrl),
		codes:  services.NewMockCodeStore(ctrl),
		gen:    services.NewMockCodeGenerator(ctrl),
		events: services.NewMockEventPublisher(ctrl),
	}
	svc := services.NewGadgetService(m.reader, m.writer, m.codes, m.gen, m.events)
	return svc, m
}

func TestGadgetService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []models.GadgetDB{
		{GadgetID: uuid.New(), Name: "Voice Modulator", Codename: "The Kraken", Status: models.StatusAvailable},
		{GadgetID: uuid.New(), Name: "Face Mapping Mask", Codename: "Operation Nightingale", Status: models.StatusDeployed},
	}

	tests := []struct {
		name      string
		status    *string
		mockSetup func(m gadgetMocks)
		wantLen   int
		wantErr   error
	}{
		{
			name:   "no filter",
			status: nil,
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					List(gomock.Any(), (*string)(nil)).
					Return(stored, nil)
				m.gen.EXPECT().MissionSuccessProbability().Return(87).Times(2)
			},
			wantLen: 2,
		},
		{
			name:   "lowercase filter is normalized",
			status: strPtr("deployed"),
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					List(gomock.Any(), gomock.Eq(strPtr(models.StatusDeployed))).
					Return(stored[1:], nil)
				m.gen.EXPECT().MissionSuccessProbability().Return(42)
			},
			wantLen: 1,
		},
		{
			name:      "unknown status filter",
			status:    strPtr("BROKEN"),
			mockSetup: func(m gadgetMocks) {},
			wantErr:   services.ErrInvalidStatus,
		},
		{
			name:   "reader error",
			status: nil,
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					List(gomock.Any(), (*string)(nil)).
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGadgetService(ctrl)
			tt.mockSetup(m)

			gadgets, err := svc.List(context.Background(), tt.status)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, gadgets)
			} else {
				assert.NoError(t, err)
				assert.Len(t, gadgets, tt.wantLen)
				for _, g := range gadgets {
					assert.Regexp(t, `^\d+%$`, g.MissionSuccessProbability)
				}
			}
		})
	}
}

func TestGadgetService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gadgetID := uuid.New()

	t.Run("found", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.reader.EXPECT().
			GetByID(gomock.Any(), gadgetID).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusAvailable}, nil)
		m.gen.EXPECT().MissionSuccessProbability().Return(65)

		gadget, err := svc.Get(context.Background(), gadgetID)
		assert.NoError(t, err)
		assert.Equal(t, "The Kraken", gadget.Codename)
		assert.Equal(t, "65%", gadget.MissionSuccessProbability)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.reader.EXPECT().
			GetByID(gomock.Any(), gadgetID).
			Return(nil, nil)

		gadget, err := svc.Get(context.Background(), gadgetID)
		assert.ErrorIs(t, err, services.ErrGadgetNotFound)
		assert.Nil(t, gadget)
	})
}

func TestGadgetService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		codename  *string
		mockSetup func(m gadgetMocks)
		wantErr   error
	}{
		{
			name:     "generated codename, first candidate free",
			codename: nil,
			mockSetup: func(m gadgetMocks) {
				m.gen.EXPECT().Codename().Return("The Kraken")
				m.reader.EXPECT().
					GetByCodename(gomock.Any(), "The Kraken").
					Return(nil, nil)
				m.writer.EXPECT().
					Save(gomock.Any(), "Voice Modulator", "The Kraken", "Mimics any voice").
					Return(&models.GadgetDB{GadgetID: uuid.New(), Codename: "The Kraken", Status: models.StatusAvailable}, nil)
				m.events.EXPECT().
					Publish(gomock.Any(), facades.EventGadgetCreated, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:     "generated codename retries on collision",
			codename: nil,
			mockSetup: func(m gadgetMocks) {
				m.gen.EXPECT().Codename().Return("The Kraken")
				m.reader.EXPECT().
					GetByCodename(gomock.Any(), "The Kraken").
					Return(&models.GadgetDB{GadgetID: uuid.New(), Codename: "The Kraken"}, nil)
				m.gen.EXPECT().Codename().Return("Silent Phantom")
				m.reader.EXPECT().
					GetByCodename(gomock.Any(), "Silent Phantom").
					Return(nil, nil)
				m.writer.EXPECT().
					Save(gomock.Any(), "Voice Modulator", "Silent Phantom", "Mimics any voice").
					Return(&models.GadgetDB{GadgetID: uuid.New(), Codename: "Silent Phantom", Status: models.StatusAvailable}, nil)
				m.events.EXPECT().
					Publish(gomock.Any(), facades.EventGadgetCreated, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:     "generated codename re-enters loop on unique violation",
			codename: nil,
			mockSetup: func(m gadgetMocks) {
				m.gen.EXPECT().Codename().Return("The Kraken")
				m.reader.EXPECT().
					GetByCodename(gomock.Any(), "The Kraken").
					Return(nil, nil)
				m.writer.EXPECT().
					Save(gomock.Any(), "Voice Modulator", "The Kraken", "Mimics any voice").
					Return(nil, repositories.ErrCodenameExists)
				m.gen.EXPECT().Codename().Return("Golden Serpent")
				m.reader.EXPECT().
					GetByCodename(gomock.Any(), "Golden Serpent").
					Return(nil, nil)
				m.writer.EXPECT().
					Save(gomock.Any(), "Voice Modulator", "Golden Serpent", "Mimics any voice").
					Return(&models.GadgetDB{GadgetID: uuid.New(), Codename: "Golden Serpent", Status: models.StatusAvailable}, nil)
				m.events.EXPECT().
					Publish(gomock.Any(), facades.EventGadgetCreated, gomock.Any()).
					Return(nil)
			},
		},
		{
			name:     "supplied codename already taken",
			codename: strPtr("The Kraken"),
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					GetByCodename(gomock.Any(), "The Kraken").
					Return(&models.GadgetDB{GadgetID: uuid.New(), Codename: "The Kraken"}, nil)
			},
			wantErr: services.ErrCodenameTaken,
		},
		{
			name:     "supplied codename hits unique violation on save",
			codename: strPtr("The Kraken"),
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					GetByCodename(gomock.Any(), "The Kraken").
					Return(nil, nil)
				m.writer.EXPECT().
					Save(gomock.Any(), "Voice Modulator", "The Kraken", "Mimics any voice").
					Return(nil, repositories.ErrCodenameExists)
			},
			wantErr: services.ErrCodenameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGadgetService(ctrl)
			tt.mockSetup(m)

			gadget, err := svc.Create(context.Background(), "Voice Modulator", "Mimics any voice", tt.codename)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, gadget)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, models.StatusAvailable, gadget.Status)
			}
		})
	}
}

func TestGadgetService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gadgetID := uuid.New()

	tests := []struct {
		name       string
		status     *string
		mockSetup  func(m gadgetMocks)
		wantErr    string
		wantStatus string
	}{
		{
			name:   "status change is normalized",
			status: strPtr("deployed"),
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					GetByID(gomock.Any(), gadgetID).
					Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusAvailable}, nil)
				m.writer.EXPECT().
					Update(gomock.Any(), gadgetID, (*string)(nil), (*string)(nil), gomock.Eq(strPtr(models.StatusDeployed))).
					Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDeployed}, nil)
			},
			wantStatus: models.StatusDeployed,
		},
		{
			name:   "unknown status",
			status: strPtr("BROKEN"),
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					GetByID(gomock.Any(), gadgetID).
					Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusAvailable}, nil)
			},
			wantErr: services.ErrInvalidStatus.Error(),
		},
		{
			name:   "status change on destroyed gadget",
			status: strPtr(models.StatusAvailable),
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					GetByID(gomock.Any(), gadgetID).
					Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDestroyed}, nil)
			},
			wantErr: "Gadget The Kraken is already destroyed",
		},
		{
			name:   "same terminal status is a no-op update",
			status: strPtr(models.StatusDecommissioned),
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					GetByID(gomock.Any(), gadgetID).
					Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDecommissioned}, nil)
				m.writer.EXPECT().
					Update(gomock.Any(), gadgetID, (*string)(nil), (*string)(nil), gomock.Eq(strPtr(models.StatusDecommissioned))).
					Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDecommissioned}, nil)
			},
			wantStatus: models.StatusDecommissioned,
		},
		{
			name:   "gadget not found",
			status: nil,
			mockSetup: func(m gadgetMocks) {
				m.reader.EXPECT().
					GetByID(gomock.Any(), gadgetID).
					Return(nil, nil)
			},
			wantErr: services.ErrGadgetNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGadgetService(ctrl)
			tt.mockSetup(m)

			gadget, err := svc.Update(context.Background(), gadgetID, nil, nil, tt.status)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, gadget)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, gadget.Status)
			}
		})
	}
}

func TestGadgetService_Decommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gadgetID := uuid.New()

	t.Run("available gadget is decommissioned", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.reader.EXPECT().
			GetByID(gomock.Any(), gadgetID).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusAvailable}, nil)
		m.writer.EXPECT().
			Decommission(gomock.Any(), gadgetID).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDecommissioned}, nil)
		m.events.EXPECT().
			Publish(gomock.Any(), facades.EventGadgetDecommissioned, gomock.Any()).
			Return(nil)

		gadget, err := svc.Decommission(context.Background(), gadgetID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusDecommissioned, gadget.Status)
	})

	t.Run("decommissioning twice re-applies", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.reader.EXPECT().
			GetByID(gomock.Any(), gadgetID).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDecommissioned}, nil)
		m.writer.EXPECT().
			Decommission(gomock.Any(), gadgetID).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDecommissioned}, nil)
		m.events.EXPECT().
			Publish(gomock.Any(), facades.EventGadgetDecommissioned, gomock.Any()).
			Return(nil)

		gadget, err := svc.Decommission(context.Background(), gadgetID)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusDecommissioned, gadget.Status)
	})

	t.Run("destroyed gadget stays destroyed", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.reader.EXPECT().
			GetByID(gomock.Any(), gadgetID).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDestroyed}, nil)

		gadget, err := svc.Decommission(context.Background(), gadgetID)
		assert.EqualError(t, err, "Gadget The Kraken is already destroyed")
		assert.Nil(t, gadget)

		var terminal *services.TerminalStateError
		assert.ErrorAs(t, err, &terminal)
	})

	t.Run("gadget not found", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.reader.EXPECT().
			GetByID(gomock.Any(), gadgetID).
			Return(nil, nil)

		gadget, err := svc.Decommission(context.Background(), gadgetID)
		assert.ErrorIs(t, err, services.ErrGadgetNotFound)
		assert.Nil(t, gadget)
	})
}

func TestGadgetService_InitiateSelfDestruct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gadgetID := uuid.New()

	t.Run("code is generated and stored", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.reader.EXPECT().
			GetByID(gomock.Any(), gadgetID).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDeployed}, nil)
		m.gen.EXPECT().SelfDestructCode().Return("A1B2C3D4")
		m.codes.EXPECT().
			Save(gomock.Any(), gadgetID, "A1B2C3D4").
			Return(nil)
		m.events.EXPECT().
			Publish(gomock.Any(), facades.EventGadgetSelfDestructInitiated, gomock.Any()).
			Return(nil)

		code, gadget, err := svc.InitiateSelfDestruct(context.Background(), gadgetID)
		assert.NoError(t, err)
		assert.Equal(t, "A1B2C3D4", code)
		assert.Equal(t, "The Kraken", gadget.Codename)
	})

	t.Run("decommissioned gadget is rejected", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.reader.EXPECT().
			GetByID(gomock.Any(), gadgetID).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDecommissioned}, nil)

		code, gadget, err := svc.InitiateSelfDestruct(context.Background(), gadgetID)
		assert.EqualError(t, err, "Gadget The Kraken is already decommissioned")
		assert.Empty(t, code)
		assert.Nil(t, gadget)
	})

	t.Run("code store error", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.reader.EXPECT().
			GetByID(gomock.Any(), gadgetID).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusAvailable}, nil)
		m.gen.EXPECT().SelfDestructCode().Return("A1B2C3D4")
		m.codes.EXPECT().
			Save(gomock.Any(), gadgetID, "A1B2C3D4").
			Return(errors.New("redis down"))

		code, gadget, err := svc.InitiateSelfDestruct(context.Background(), gadgetID)
		assert.EqualError(t, err, "redis down")
		assert.Empty(t, code)
		assert.Nil(t, gadget)
	})
}

func TestGadgetService_ConfirmSelfDestruct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gadgetID := uuid.New()

	t.Run("matching code destroys the gadget", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.codes.EXPECT().
			Get(gomock.Any(), gadgetID).
			Return("A1B2C3D4", nil)
		m.writer.EXPECT().
			SetStatus(gomock.Any(), gadgetID, models.StatusDestroyed).
			Return(&models.GadgetDB{GadgetID: gadgetID, Codename: "The Kraken", Status: models.StatusDestroyed}, nil)
		m.codes.EXPECT().
			Delete(gomock.Any(), gadgetID).
			Return(nil)
		m.events.EXPECT().
			Publish(gomock.Any(), facades.EventGadgetDestroyed, gomock.Any()).
			Return(nil)

		gadget, err := svc.ConfirmSelfDestruct(context.Background(), gadgetID, "A1B2C3D4")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusDestroyed, gadget.Status)
	})

	t.Run("wrong code", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.codes.EXPECT().
			Get(gomock.Any(), gadgetID).
			Return("A1B2C3D4", nil)

		gadget, err := svc.ConfirmSelfDestruct(context.Background(), gadgetID, "WRONG000")
		assert.ErrorIs(t, err, services.ErrConfirmationCodeInvalid)
		assert.Nil(t, gadget)
	})

	t.Run("expired code", func(t *testing.T) {
		svc, m := newGadgetService(ctrl)
		m.codes.EXPECT().
			Get(gomock.Any(), gadgetID).
			Return("", nil)

		gadget, err := svc.ConfirmSelfDestruct(context.Background(), gadgetID, "A1B2C3D4")
		assert.ErrorIs(t, err, services.ErrConfirmationCodeInvalid)
		assert.Nil(t, gadget)
	})
}

func strPtr(s string) *string {
	return &s
}
