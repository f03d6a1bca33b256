package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pangolin1100/class-order-system/internal/model"
)

func newTestConfigStore(t *testing.T) *ConfigStore {
	t.Helper()
	return NewConfigStore(filepath.Join(t.TempDir(), "menu_config.json"))
}

func TestConfigStore_Load_MissingFile(t *testing.T) {
	s := newTestConfigStore(t)
	assert.Equal(t, model.DefaultMenu(), s.Load())
}

func TestConfigStore_Load_FailOpen(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"meals": {`},
		{"meals missing", `{"drinks": ["紅茶"]}`},
		{"drinks missing", `{"meals": {"A": "A餐"}}`},
		{"meals wrong shape", `{"meals": ["A餐"], "drinks": ["紅茶"]}`},
		{"drinks wrong shape", `{"meals": {"A": "A餐"}, "drinks": "紅茶"}`},
		{"null fields", `{"meals": null, "drinks": null}`},
		{"not an object", `[1, 2, 3]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestConfigStore(t)
			require.NoError(t, os.WriteFile(s.path, []byte(tc.raw), 0o644))
			assert.Equal(t, model.DefaultMenu(), s.Load(), "an invalid document falls back to the default")
		})
	}
}

func TestConfigStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestConfigStore(t)

	cfg := model.MenuConfig{
		Meals: map[string]string{
			"A": "A餐 - 滷肉飯",
			"B": "B餐 - 炒麵",
		},
		Drinks: []string{"冬瓜茶", "紅茶", "紅茶"}, // duplicates are legal
	}
	require.NoError(t, s.Save(cfg))
	assert.Equal(t, cfg, s.Load())
}

func TestConfigStore_Save_HumanEditable(t *testing.T) {
	s := newTestConfigStore(t)
	require.NoError(t, s.Save(model.DefaultMenu()))

	raw, err := os.ReadFile(s.path)
	require.NoError(t, err)
	content := string(raw)

	assert.Contains(t, content, "香煎雞腿飯", "non-ASCII text is written verbatim, not escaped")
	assert.NotContains(t, content, `\u`)
	assert.Contains(t, content, "    \"meals\"", "document is indented for hand editing")

	// Key order is stable: meal codes come out sorted on every save.
	idxA := strings.Index(content, `"A"`)
	idxB := strings.Index(content, `"B"`)
	assert.True(t, idxA >= 0 && idxB >= 0 && idxA < idxB)
}

func TestConfigStore_Save_OverwritesWholeDocument(t *testing.T) {
	s := newTestConfigStore(t)
	require.NoError(t, s.Save(model.DefaultMenu()))

	replacement := model.MenuConfig{
		Meals:  map[string]string{"X": "X餐 - 咖哩飯"},
		Drinks: []string{"烏龍茶"},
	}
	require.NoError(t, s.Save(replacement))
	assert.Equal(t, replacement, s.Load())
}
