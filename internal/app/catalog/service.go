package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

// Fixed answers used whenever the recommender cannot give a real one.
const (
	FallbackNoKey  = "I recommend a classic Iced Coffee. (AI Key missing)"
	FallbackEmpty  = "How about a refreshing Fruit Soda?"
	FallbackFailed = "I'd recommend our best-seller, the Halo-Halo!"
)

type Service struct {
	menu        interfaces.MenuRepository
	recommender interfaces.Recommender
	logger      logger.Logger
}

// NewService accepts a nil recommender; Recommend then always answers with
// FallbackNoKey.
func NewService(menu interfaces.MenuRepository, recommender interfaces.Recommender, logger logger.Logger) *Service {
	return &Service{
		menu:        menu,
		recommender: recommender,
		logger:      logger,
	}
}

func (s *Service) Menu() []domain.MenuItem {
	return s.menu.List()
}

func (s *Service) Item(id string) (domain.MenuItem, error) {
	return s.menu.FindByID(id)
}

// UpdateImage attaches an opaque image reference; "" clears it.
func (s *Service) UpdateImage(id, image string) (domain.MenuItem, error) {
	if err := s.menu.UpdateImage(id, image); err != nil {
		return domain.MenuItem{}, err
	}

	s.logger.Info("menu_image_updated", fmt.Sprintf("Image updated for %s", id), "", map[string]interface{}{
		"item_id": id,
		"cleared": image == "",
	})
	return s.menu.FindByID(id)
}

// Recommend never fails: every error path degrades to a fixed sentence.
func (s *Service) Recommend(ctx context.Context, mood string) (answer string) {
	if s.recommender == nil {
		return FallbackNoKey
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recommend_panic", "Recommender panicked", "", nil, fmt.Errorf("%v", r))
			answer = FallbackFailed
		}
	}()

	items := s.menu.List()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	text, err := s.recommender.Recommend(ctx, strings.TrimSpace(mood), names)
	switch {
	case errors.Is(err, interfaces.ErrMissingAPIKey):
		return FallbackNoKey
	case err != nil:
		s.logger.Error("recommend_failed", "Recommendation request failed", "", nil, err)
		return FallbackFailed
	case strings.TrimSpace(text) == "":
		return FallbackEmpty
	}
	return strings.TrimSpace(text)
}
