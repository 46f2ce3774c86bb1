package creations

import (
	"context"
	"errors"
	"fmt"

	"nutriplan/internal/logger"
)

// Exporter pushes a deliverable copy of a saved document to object
// storage. Optional: a nil exporter disables the feature.
type Exporter interface {
	UploadJSON(ctx context.Context, key string, doc any) (string, error)
}

type Service struct {
	repo     Repository
	exporter Exporter
	log      *logger.Logger
}

func NewService(repo Repository, exporter Exporter, log *logger.Logger) *Service {
	return &Service{
		repo:     repo,
		exporter: exporter,
		log:      log,
	}
}

func (s *Service) Save(ctx context.Context, creation *Creation) error {
	if creation.Name == "" {
		return errors.New("creation name is required")
	}
	if !validTypes[creation.Type] {
		return errors.New("creation type must be DIET or CART")
	}
	if creation.OwnerID == "" {
		return errors.New("owner is required")
	}
	if creation.Content == nil {
		return errors.New("creation content is required")
	}

	if err := s.repo.Save(ctx, creation); err != nil {
		return err
	}

	// Deliverable export is best effort; the row is already saved.
	if s.exporter != nil {
		key := fmt.Sprintf("deliverables/%s/%s.json", creation.OwnerID, creation.ID)
		if url, err := s.exporter.UploadJSON(ctx, key, creation); err != nil {
			s.log.Warn("deliverable export failed", "creation_id", creation.ID, "err", err)
		} else {
			s.log.Info("deliverable exported", "creation_id", creation.ID, "url", url)
		}
	}

	return nil
}

func (s *Service) List(ctx context.Context, ownerID, creationType string) ([]*Creation, error) {
	if creationType != "" && !validTypes[creationType] {
		return nil, errors.New("creation type must be DIET or CART")
	}
	return s.repo.ListByOwner(ctx, ownerID, creationType)
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*Creation, error) {
	return s.repo.GetByID(ctx, ownerID, id)
}
