package summary_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerdesk/arap/cmd/root"
	"ledgerdesk/arap/cmd/summary"
)

func TestSummaryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summary", summary.Cmd.Use)
	assert.Contains(t, summary.Cmd.Short, "aging summary")
	assert.NotNil(t, summary.Cmd.Flags().Lookup("format"))
}

func TestSummaryCommand_RunEmptyLedger(t *testing.T) {
	original := root.Cfg.Data.Dir
	defer func() { root.Cfg.Data.Dir = original }()
	root.Cfg.Data.Dir = t.TempDir()

	var out bytes.Buffer
	summary.Cmd.SetOut(&out)
	summary.Cmd.Run(summary.Cmd, nil)

	require.Contains(t, out.String(), "Receivable (pending: 0, total: 0.00)")
	assert.Contains(t, out.String(), "Net position: 0.00")
}
