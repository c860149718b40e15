package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/imfops/gadget-api/internal/facades"
	"github.com/imfops/gadget-api/internal/logger"
	"github.com/imfops/gadget-api/internal/models"
	"github.com/imfops/gadget-api/internal/repositories"
)

// Error variables
var (
	ErrGadgetNotFound         = errors.New("gadget not found")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrCodenameTaken          = errors.New("codename already in use")
	ErrConfirmationCodeInvalid = errors.New("invalid or expired confirmation code")
)

// TerminalStateError reports a status-changing operation attempted on a
// gadget that is already DESTROYED or DECOMMISSIONED.
type TerminalStateError struct {
	Codename string
	Status   string
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("Gadget %s is already %s", e.Codename, strings.ToLower(e.Status))
}

// GadgetReader defines read-only operations for gadgets.
type GadgetReader interface {
	List(ctx context.Context, status *string) ([]models.GadgetDB, error)
	GetByID(ctx context.Context, gadgetID uuid.UUID) (*models.GadgetDB, error)
	GetByCodename(ctx context.Context, codename string) (*models.GadgetDB, error)
}

// GadgetWriter defines write operations for gadgets.
type GadgetWriter interface {
	Save(ctx context.Context, name, codename, description string) (*models.GadgetDB, error)
	Update(ctx context.Context, gadgetID uuid.UUID, name, description, status *string) (*models.GadgetDB, error)
	Decommission(ctx context.Context, gadgetID uuid.UUID) (*models.GadgetDB, error)
	SetStatus(ctx context.Context, gadgetID uuid.UUID, status string) (*models.GadgetDB, error)
}

// CodeStore holds self-destruct confirmation codes between the two phases.
type CodeStore interface {
	Save(ctx context.Context, gadgetID uuid.UUID, code string) error
	Get(ctx context.Context, gadgetID uuid.UUID) (string, error)
	Delete(ctx context.Context, gadgetID uuid.UUID) error
}

// CodeGenerator produces codenames, probabilities and confirmation codes.
type CodeGenerator interface {
	Codename() string
	MissionSuccessProbability() int
	SelfDestructCode() string
}

// EventPublisher publishes gadget lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event string, gadget *models.GadgetDB) error
}

// GadgetService orchestrates gadget lifecycle transitions, codename
// generation and the two-phase self-destruct handshake.
type GadgetService struct {
	reader GadgetReader
	writer GadgetWriter
	codes  CodeStore
	gen    CodeGenerator
	events EventPublisher
}

// NewGadgetService creates a new GadgetService instance.
func NewGadgetService(reader GadgetReader, writer GadgetWriter, codes CodeStore, gen CodeGenerator, events EventPublisher) *GadgetService {
	return &GadgetService{
		reader: reader,
		writer: writer,
		codes:  codes,
		gen:    gen,
		events: events,
	}
}

// annotate wraps a stored gadget with a freshly generated mission success
// probability. The value is not stable across reads.
func (svc *GadgetService) annotate(gadget models.GadgetDB) models.Gadget {
	return models.Gadget{
		GadgetDB:                  gadget,
		MissionSuccessProbability: fmt.Sprintf("%d%%", svc.gen.MissionSuccessProbability()),
	}
}

// publish sends a lifecycle event. Failures are logged, never surfaced.
func (svc *GadgetService) publish(ctx context.Context, event string, gadget *models.GadgetDB) {
	if svc.events == nil {
		return
	}
	if err := svc.events.Publish(ctx, event, gadget); err != nil {
		logger.Log.Errorw("failed to publish lifecycle event", "event", event, "err", err)
	}
}

// List returns all gadgets, optionally filtered by status. The filter is
// case-insensitive; an unknown status is rejected.
func (svc *GadgetService) List(ctx context.Context, status *string) ([]models.Gadget, error) {
	var filter *string
	if status != nil && *status != "" {
		normalized := strings.ToUpper(*status)
		if !models.ValidStatus(normalized) {
			return nil, ErrInvalidStatus
		}
		filter = &normalized
	}

	gadgets, err := svc.reader.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list gadgets", "err", err)
		return nil, err
	}

	annotated := make([]models.Gadget, 0, len(gadgets))
	for _, g := range gadgets {
		annotated = append(annotated, svc.annotate(g))
	}

	return annotated, nil
}

// Get returns one annotated gadget.
func (svc *GadgetService) Get(ctx context.Context, gadgetID uuid.UUID) (*models.Gadget, error) {
	gadget, err := svc.reader.GetByID(ctx, gadgetID)
	if err != nil {
		logger.Log.Errorw("failed to get gadget", "gadgetID", gadgetID, "err", err)
		return nil, err
	}
	if gadget == nil {
		return nil, ErrGadgetNotFound
	}

	annotated := svc.annotate(*gadget)
	return &annotated, nil
}

// Create persists a new gadget with status AVAILABLE. When no codename is
// supplied, candidates are generated until an unused one is found. The loop
// is unbounded: 75 combinations against a small catalog make collisions
// cheap, and an insert-time unique violation on a generated codename simply
// re-enters the loop, which closes the check-then-insert race.
func (svc *GadgetService) Create(ctx context.Context, name, description string, codename *string) (*models.GadgetDB, error) {
	supplied := codename != nil && *codename != ""

	for {
		cn := ""
		if supplied {
			cn = *codename
			existing, err := svc.reader.GetByCodename(ctx, cn)
			if err != nil {
				logger.Log.Errorw("failed to check codename", "err", err)
				return nil, err
			}
			if existing != nil {
				return nil, ErrCodenameTaken
			}
		} else {
			for {
				candidate := svc.gen.Codename()
				existing, err := svc.reader.GetByCodename(ctx, candidate)
				if err != nil {
					logger.Log.Errorw("failed to check codename", "err", err)
					return nil, err
				}
				if existing == nil {
					cn = candidate
					break
				}
			}
		}

		gadget, err := svc.writer.Save(ctx, name, cn, description)
		if err != nil {
			if errors.Is(err, repositories.ErrCodenameExists) {
				if supplied {
					return nil, ErrCodenameTaken
				}
				continue
			}
			logger.Log.Errorw("failed to save gadget", "err", err)
			return nil, err
		}

		svc.publish(ctx, facades.EventGadgetCreated, gadget)
		return gadget, nil
	}
}

// Update applies the non-nil fields. A status change is normalized to upper
// case, validated, and rejected on a gadget already in a terminal status.
func (svc *GadgetService) Update(ctx context.Context, gadgetID uuid.UUID, name, description, status *string) (*models.GadgetDB, error) {
	gadget, err := svc.reader.GetByID(ctx, gadgetID)
	if err != nil {
		logger.Log.Errorw("failed to get gadget", "gadgetID", gadgetID, "err", err)
		return nil, err
	}
	if gadget == nil {
		return nil, ErrGadgetNotFound
	}

	if status != nil {
		normalized := strings.ToUpper(*status)
		if !models.ValidStatus(normalized) {
			return nil, ErrInvalidStatus
		}
		if models.TerminalStatus(gadget.Status) && normalized != gadget.Status {
			return nil, &TerminalStateError{Codename: gadget.Codename, Status: gadget.Status}
		}
		status = &normalized
	}

	updated, err := svc.writer.Update(ctx, gadgetID, name, description, status)
	if err != nil {
		logger.Log.Errorw("failed to update gadget", "gadgetID", gadgetID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrGadgetNotFound
	}

	return updated, nil
}

// Decommission marks the gadget as DECOMMISSIONED and stamps the time.
// Re-decommissioning re-applies the transition and re-stamps; a DESTROYED
// gadget stays destroyed.
func (svc *GadgetService) Decommission(ctx context.Context, gadgetID uuid.UUID) (*models.GadgetDB, error) {
	gadget, err := svc.reader.GetByID(ctx, gadgetID)
	if err != nil {
		logger.Log.Errorw("failed to get gadget", "gadgetID", gadgetID, "err", err)
		return nil, err
	}
	if gadget == nil {
		return nil, ErrGadgetNotFound
	}
	if gadget.Status == models.StatusDestroyed {
		return nil, &TerminalStateError{Codename: gadget.Codename, Status: gadget.Status}
	}

	decommissioned, err := svc.writer.Decommission(ctx, gadgetID)
	if err != nil {
		logger.Log.Errorw("failed to decommission gadget", "gadgetID", gadgetID, "err", err)
		return nil, err
	}
	if decommissioned == nil {
		return nil, ErrGadgetNotFound
	}

	svc.publish(ctx, facades.EventGadgetDecommissioned, decommissioned)
	return decommissioned, nil
}

// InitiateSelfDestruct generates a confirmation code for the gadget, stores
// it with a TTL and returns it. Fails when the gadget is already DESTROYED
// or DECOMMISSIONED.
func (svc *GadgetService) InitiateSelfDestruct(ctx context.Context, gadgetID uuid.UUID) (string, *models.GadgetDB, error) {
	gadget, err := svc.reader.GetByID(ctx, gadgetID)
	if err != nil {
		logger.Log.Errorw("failed to get gadget", "gadgetID", gadgetID, "err", err)
		return "", nil, err
	}
	if gadget == nil {
		return "", nil, ErrGadgetNotFound
	}
	if models.TerminalStatus(gadget.Status) {
		return "", nil, &TerminalStateError{Codename: gadget.Codename, Status: gadget.Status}
	}

	code := svc.gen.SelfDestructCode()
	if err := svc.codes.Save(ctx, gadgetID, code); err != nil {
		logger.Log.Errorw("failed to store confirmation code", "gadgetID", gadgetID, "err", err)
		return "", nil, err
	}

	svc.publish(ctx, facades.EventGadgetSelfDestructInitiated, gadget)
	return code, gadget, nil
}

// ConfirmSelfDestruct verifies the confirmation code against the stored one
// and, on a match, sets the gadget status to DESTROYED and deletes the code
// so it cannot be replayed.
func (svc *GadgetService) ConfirmSelfDestruct(ctx context.Context, gadgetID uuid.UUID, confirmationCode string) (*models.GadgetDB, error) {
	stored, err := svc.codes.Get(ctx, gadgetID)
	if err != nil {
		logger.Log.Errorw("failed to read confirmation code", "gadgetID", gadgetID, "err", err)
		return nil, err
	}
	if stored == "" || stored != confirmationCode {
		return nil, ErrConfirmationCodeInvalid
	}

	destroyed, err := svc.writer.SetStatus(ctx, gadgetID, models.StatusDestroyed)
	if err != nil {
		logger.Log.Errorw("failed to destroy gadget", "gadgetID", gadgetID, "err", err)
		return nil, err
	}
	if destroyed == nil {
		return nil, ErrGadgetNotFound
	}

	if err := svc.codes.Delete(ctx, gadgetID); err != nil {
		logger.Log.Errorw("failed to delete confirmation code", "gadgetID", gadgetID, "err", err)
	}

	svc.publish(ctx, facades.EventGadgetDestroyed, destroyed)
	return destroyed, nil
}
