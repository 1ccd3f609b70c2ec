package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plouvier/facture/pkg/workspace"
)

func TestGenerate(t *testing.T) {
	orig := typstCommand
	typstCommand = "true"
	t.Cleanup(func() { typstCommand = orig })

	root := t.TempDir()
	buildDir := filepath.Join(root, "build")
	outputPath := filepath.Join(root, "output", "2015031401.pdf")

	err := Generate(buildDir,
		filepath.Join(root, "settings.yaml"),
		filepath.Join(root, "customer.yaml"),
		filepath.Join(root, "invoices", "2015031401.yaml"),
		outputPath)
	require.NoError(t, err)

	// both directories were created
	for _, dir := range []string{buildDir, filepath.Dir(outputPath)} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// template written verbatim
	data, err := os.ReadFile(filepath.Join(buildDir, "default_invoice_template.typ"))
	require.NoError(t, err)
	assert.Equal(t, invoiceTemplate, string(data))

	// placeholders substituted with concrete paths
	data, err = os.ReadFile(filepath.Join(buildDir, "2015031401.typ"))
	require.NoError(t, err)
	main := string(data)
	assert.NotContains(t, main, "{{")
	assert.Contains(t, main, filepath.Join(buildDir, "default_invoice_template.typ"))
	assert.Contains(t, main, filepath.Join(root, "settings.yaml"))
	assert.Contains(t, main, filepath.Join(root, "customer.yaml"))
	assert.Contains(t, main, filepath.Join(root, "invoices", "2015031401.yaml"))
}

func TestGenerateMissingParent(t *testing.T) {
	root := t.TempDir()

	var create *workspace.CreateError

	err := Generate(filepath.Join(root, "missing", "build"),
		"settings.yaml", "customer.yaml", "invoice.yaml",
		filepath.Join(root, "output", "x.pdf"))
	require.ErrorAs(t, err, &create)

	err = Generate(filepath.Join(root, "build"),
		"settings.yaml", "customer.yaml", "invoice.yaml",
		filepath.Join(root, "missing", "output", "x.pdf"))
	require.ErrorAs(t, err, &create)
}

func TestGenerateSpawnFailure(t *testing.T) {
	orig := typstCommand
	typstCommand = filepath.Join(t.TempDir(), "no-such-binary")
	t.Cleanup(func() { typstCommand = orig })

	root := t.TempDir()
	err := Generate(filepath.Join(root, "build"),
		"settings.yaml", "customer.yaml", "invoice.yaml",
		filepath.Join(root, "output", "x.pdf"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start typst")
}

func TestMainTemplatePlaceholders(t *testing.T) {
	for _, key := range []string{
		"{{ TEMPLATE_PATH }}",
		"{{ SETTINGS_PATH }}",
		"{{ CUSTOMERS_PATH }}",
		"{{ INVOICE_PATH }}",
	} {
		assert.Contains(t, mainTemplate, key)
	}
}
