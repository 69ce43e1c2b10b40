package app_test

import (
	"testing"

	"github.com/nikolayk812/productcard-demo/internal/app"
	"github.com/nikolayk812/productcard-demo/internal/domain"
	"github.com/nikolayk812/productcard-demo/internal/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newApp(premium bool) *app.App {
	return app.New(premium, repository.NewCart(zap.NewNop()), zap.NewNop())
}

func TestApp(t *testing.T) {
	tests := []struct {
		name        string
		add         []domain.VariantID
		remove      []domain.VariantID
		wantItems   []domain.VariantID
		wantRemoved []int
	}{
		{
			name:      "add appends in order",
			add:       []domain.VariantID{2234, 2235, 2234},
			wantItems: []domain.VariantID{2234, 2235, 2234},
		},
		{
			name:        "remove drops all occurrences",
			add:         []domain.VariantID{2234, 2235, 2234},
			remove:      []domain.VariantID{2234},
			wantItems:   []domain.VariantID{2235},
			wantRemoved: []int{2},
		},
		{
			name:        "remove absent id is a no-op",
			add:         []domain.VariantID{2235},
			remove:      []domain.VariantID{2234},
			wantItems:   []domain.VariantID{2235},
			wantRemoved: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(true)

			for _, id := range tt.add {
				a.UpdateCart(id)
			}
			var removed []int
			for _, id := range tt.remove {
				removed = append(removed, a.RemoveItem(id))
			}

			assert.Equal(t, tt.wantItems, a.Cart().Items)
			assert.Equal(t, len(tt.wantItems), a.CartCount())
			assert.Equal(t, tt.wantRemoved, removed)
		})
	}
}

func TestAppPremium(t *testing.T) {
	assert.True(t, newApp(true).Premium())
	assert.False(t, newApp(false).Premium())
}
