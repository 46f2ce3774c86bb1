package creations

import (
	"context"
	"strings"
	"testing"

	"nutriplan/internal/logger"
)

type mockRepository struct {
	saved []*Creation
}

func (m *mockRepository) Save(ctx context.Context, creation *Creation) error {
	if creation.ID == "" {
		creation.ID = "creation-1"
	}
	m.saved = append(m.saved, creation)
	return nil
}

func (m *mockRepository) ListByOwner(ctx context.Context, ownerID, creationType string) ([]*Creation, error) {
	var list []*Creation
	for _, c := range m.saved {
		if c.OwnerID == ownerID && (creationType == "" || c.Type == creationType) {
			list = append(list, c)
		}
	}
	return list, nil
}

func (m *mockRepository) GetByID(ctx context.Context, ownerID, id string) (*Creation, error) {
	for _, c := range m.saved {
		if c.ID == id && c.OwnerID == ownerID {
			return c, nil
		}
	}
	return nil, ErrCreationNotFound
}

type stubExporter struct {
	keys []string
}

func (s *stubExporter) UploadJSON(ctx context.Context, key string, doc any) (string, error) {
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func validCreation() *Creation {
	return &Creation{
		OwnerID: "owner-1",
		Name:    "Plan semanal",
		Type:    "DIET",
		Content: map[string]interface{}{"foodStatus": map[string]string{"Pollo": "base"}},
	}
}

func TestSaveValidation(t *testing.T) {
	service := NewService(&mockRepository{}, nil, logger.NewNop())
	ctx := context.Background()

	c := validCreation()
	c.Name = ""
	if err := service.Save(ctx, c); err == nil {
		t.Fatalf("expected error for missing name")
	}

	c = validCreation()
	c.Type = "RECIPE"
	if err := service.Save(ctx, c); err == nil {
		t.Fatalf("expected error for invalid type")
	}

	c = validCreation()
	c.Content = nil
	if err := service.Save(ctx, c); err == nil {
		t.Fatalf("expected error for missing content")
	}
}

func TestSaveWithoutExporter(t *testing.T) {
	repo := &mockRepository{}
	service := NewService(repo, nil, logger.NewNop())

	if err := service.Save(context.Background(), validCreation()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("creation not persisted")
	}
}

func TestSaveExportsDeliverable(t *testing.T) {
	repo := &mockRepository{}
	exporter := &stubExporter{}
	service := NewService(repo, exporter, logger.NewNop())

	c := validCreation()
	if err := service.Save(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(exporter.keys) != 1 {
		t.Fatalf("expected one export, got %d", len(exporter.keys))
	}
	if !strings.HasPrefix(exporter.keys[0], "deliverables/owner-1/") {
		t.Fatalf("unexpected export key %q", exporter.keys[0])
	}
}

func TestListRejectsUnknownType(t *testing.T) {
	service := NewService(&mockRepository{}, nil, logger.NewNop())

	if _, err := service.List(context.Background(), "owner-1", "RECIPE"); err == nil {
		t.Fatalf("expected error for unknown type filter")
	}
}
