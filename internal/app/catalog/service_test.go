package catalog

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/adapter/memory"
	"github.com/YelzhanWeb/kiosk/internal/domain"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

type stubRecommender struct {
	text  string
	err   error
	panic bool

	mood  string
	names []string
}

func (r *stubRecommender) Recommend(ctx context.Context, mood string, names []string) (string, error) {
	if r.panic {
		panic("boom")
	}
	r.mood = mood
	r.names = names
	return r.text, r.err
}

func newService(t *testing.T, rec interfaces.Recommender) *Service {
	t.Helper()
	menu, err := memory.NewMenuRepository(domain.DefaultMenu())
	require.NoError(t, err)
	return NewService(menu, rec, logger.NewWithWriter("test", io.Discard, "error"))
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name string
		rec  interfaces.Recommender
		want string
	}{
		{"no recommender", nil, FallbackNoKey},
		{"missing key", &stubRecommender{err: interfaces.ErrMissingAPIKey}, FallbackNoKey},
		{"service error", &stubRecommender{err: errors.New("quota")}, FallbackFailed},
		{"empty answer", &stubRecommender{text: "  "}, FallbackEmpty},
		{"panic", &stubRecommender{panic: true}, FallbackFailed},
		{"answer", &stubRecommender{text: "I recommend the Okinawa because it is cozy.\n"}, "I recommend the Okinawa because it is cozy."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, tt.rec)
			assert.Equal(t, tt.want, svc.Recommend(context.Background(), "sleepy"))
		})
	}
}

func TestRecommend_PassesMoodAndMenuNames(t *testing.T) {
	rec := &stubRecommender{text: "ok"}
	svc := newService(t, rec)

	svc.Recommend(context.Background(), "  happy ")

	assert.Equal(t, "happy", rec.mood)
	assert.Len(t, rec.names, len(domain.DefaultMenu()))
	assert.Contains(t, rec.names, "Halo-Halo Overload")
}

func TestUpdateImage(t *testing.T) {
	svc := newService(t, nil)

	item, err := svc.UpdateImage("hc-1", "data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", item.Image)

	item, err = svc.UpdateImage("hc-1", "")
	require.NoError(t, err)
	assert.Empty(t, item.Image)

	_, err = svc.UpdateImage("missing", "x")
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}
