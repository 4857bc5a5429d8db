package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	items := Default()
	require.Len(t, items, 8)
	assert.Equal(t, "Noodles", items[0].Name)
	assert.True(t, decimal.NewFromInt(2).Equal(items[0].Price))
	assert.Equal(t, 200, items[0].Calories)
	assert.Equal(t, "Negi", items[4].Name)
	assert.True(t, decimal.RequireFromString("0.5").Equal(items[4].Price))

	items[0].Name = "changed"
	assert.Equal(t, "Noodles", Default()[0].Name)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name        string
		data        string
		expectedLen int
		expectedErr bool
	}{
		{
			name: "valid catalog",
			data: `
items:
  - name: Gyoza
    price: "3.25"
    calories: 300
  - name: Water
    price: 0
    calories: 0
`,
			expectedLen: 2,
		},
		{name: "empty document", data: ``, expectedErr: true},
		{name: "no items", data: "items: []\n", expectedErr: true},
		{name: "missing name", data: "items:\n  - price: \"1\"\n", expectedErr: true},
		{name: "bad price", data: "items:\n  - name: Tea\n    price: cheap\n", expectedErr: true},
		{name: "negative price", data: "items:\n  - name: Tea\n    price: \"-1\"\n", expectedErr: true},
		{name: "negative calories", data: "items:\n  - name: Tea\n    price: \"1\"\n    calories: -5\n", expectedErr: true},
		{name: "malformed yaml", data: "items: [", expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := Parse([]byte(tc.data))
			if tc.expectedErr {
				assert.ErrorIs(t, err, ErrInvalidCatalog)
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tc.expectedLen)
		})
	}
}

func TestLoad(t *testing.T) {
	items, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), items)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - name: Gyoza\n    price: \"3.25\"\n    calories: 300\n"), 0o600))

	items, err = Load(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Gyoza", items[0].Name)
	assert.True(t, decimal.RequireFromString("3.25").Equal(items[0].Price))
	assert.Equal(t, 300, items[0].Calories)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
