package buildcfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadTemplates(t *testing.T) {
	path := writeFile(t, "templates.yaml", `
templates:
  - name: Apex Gaming
    basePrice: 1599
    category: gaming
    spec:
      cpu: Ryzen 7 9700X
      gpu: RTX 4070 Super
      ram: 32GB DDR5
      storage: 2TB NVMe
      cooling: 360mm Liquid AIO
    features: [Ray tracing, Quiet cooling]
    targetUseCases: [gaming, esports]
    performanceScore: 92
    valueScore: 70
    futureProofScore: 88
    powerEfficiency: 60
  - name: Everyday Office
    basePrice: 749
    category: office
    spec:
      cpu: Intel Core i3-14100
      gpu: Integrated Graphics
      ram: 16GB DDR4
      storage: 1TB SSD
      cooling: Stock Air Cooler
    targetUseCases: [office, everyday]
    performanceScore: 35
    valueScore: 90
    futureProofScore: 40
    powerEfficiency: 85
`)

	templates, err := LoadTemplates(path)

	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "Apex Gaming", templates[0].Name)
	assert.Equal(t, "RTX 4070 Super", templates[0].Spec.GPU)
	assert.Equal(t, []string{"gaming", "esports"}, templates[0].TargetUseCases)
	assert.Equal(t, 92, templates[0].PerformanceScore)
	assert.Equal(t, "Everyday Office", templates[1].Name)
}

func TestLoadTemplates_EmptySet(t *testing.T) {
	path := writeFile(t, "templates.yaml", "templates: []")

	_, err := LoadTemplates(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no templates")
}

func TestLoadTemplates_EmptyName(t *testing.T) {
	path := writeFile(t, "templates.yaml", `
templates:
  - performanceScore: 50
`)

	_, err := LoadTemplates(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty name")
}

func TestLoadTemplates_ScoreOutOfRange(t *testing.T) {
	path := writeFile(t, "templates.yaml", `
templates:
  - name: Broken
    performanceScore: 120
`)

	_, err := LoadTemplates(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside 0-100")
}

func TestLoadPricing(t *testing.T) {
	path := writeFile(t, "pricing.yaml", `
pricing:
  cpu:
    entries:
      - keyword: 9700X
        price: 300
    fallbacks:
      - keyword: Ryzen
        price: 180
    default: 150
  gpu:
    default: 100
  ram:
    default: 50
  storage:
    default: 70
  cooling:
    default: 35
  estimates:
    motherboard: 180
    case: 100
    psu: 120
`)

	pricing, err := LoadPricing(path)

	require.NoError(t, err)
	require.Len(t, pricing.CPU.Entries, 1)
	assert.Equal(t, "9700X", pricing.CPU.Entries[0].Keyword)
	assert.InDelta(t, 300, pricing.CPU.Entries[0].Price, 0.001)
	require.Len(t, pricing.CPU.Fallbacks, 1)
	assert.InDelta(t, 150, pricing.CPU.Default, 0.001)
	assert.InDelta(t, 180, pricing.Estimates.Motherboard, 0.001)
}

func TestLoadPricing_MissingDefault(t *testing.T) {
	path := writeFile(t, "pricing.yaml", `
pricing:
  cpu:
    default: 150
  gpu:
    default: 100
  ram:
    default: 50
  storage:
    default: 70
  cooling:
    entries:
      - keyword: Liquid
        price: 130
`)

	_, err := LoadPricing(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cooling")
	assert.Contains(t, err.Error(), "must be positive")
}

func TestLoadFiles_Missing(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTemplates(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)

	_, err = LoadPricing(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
