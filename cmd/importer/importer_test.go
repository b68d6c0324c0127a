package importer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledgerdesk/arap/cmd/importer"
)

func TestImportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "import", importer.Cmd.Use)
	assert.Contains(t, importer.Cmd.Short, "Excel workbook")
	assert.Contains(t, importer.Cmd.Long, "aliases")
	assert.NotNil(t, importer.Cmd.Run)
}
