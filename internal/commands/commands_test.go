package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledgerlab/internal/accounts"
	"github.com/cleared-dev/ledgerlab/internal/commands"
	"github.com/cleared-dev/ledgerlab/internal/journal"
	"github.com/cleared-dev/ledgerlab/internal/model"
	"github.com/cleared-dev/ledgerlab/internal/report"
)

func runLedgerlab(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := commands.NewRootCommand()
	cmd.SetArgs(append(args, "--no-color"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func initWorkbook(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runLedgerlab(t, "init", dir, "--name", "Bodega Don Pepe")
	require.NoError(t, err)
	return dir
}

func readJournal(t *testing.T, dir string) []model.JournalEntry {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, "journal.csv"))
	require.NoError(t, err)
	defer f.Close()
	entries, err := journal.ReadEntries(f)
	require.NoError(t, err)
	return entries
}

func TestInit_CreatesFiles(t *testing.T) {
	dir := initWorkbook(t)

	data, err := os.ReadFile(filepath.Join(dir, "ledgerlab.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Bodega Don Pepe")
	assert.Contains(t, string(data), "currency: PEN")

	f, err := os.Open(filepath.Join(dir, "accounts.csv"))
	require.NoError(t, err)
	defer f.Close()
	accts, err := accounts.ReadAccounts(f)
	require.NoError(t, err)
	assert.Len(t, accts, len(accounts.DefaultChart()))

	assert.FileExists(t, filepath.Join(dir, "journal.csv"))
}

func TestInit_RequiresName(t *testing.T) {
	_, err := runLedgerlab(t, "init", t.TempDir())
	require.Error(t, err, "init without --name should fail")
}

func TestInit_RefusesExistingWorkbook(t *testing.T) {
	dir := initWorkbook(t)
	_, err := runLedgerlab(t, "init", dir, "--name", "Otra")
	require.Error(t, err)
}

func TestCommandsNeedWorkbook(t *testing.T) {
	_, err := runLedgerlab(t, "kpis", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ledgerlab init")
}

func TestAccounts_AddEditDelete(t *testing.T) {
	dir := initWorkbook(t)

	out, err := runLedgerlab(t, "accounts", "add", "1031", "Caja Chica", "--nature", "activo", "--group", "Activo Corriente", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Added account 1031")

	_, err = runLedgerlab(t, "accounts", "add", "12", "Caja", "--nature", "activo", "--group", "AC", "--dir", dir)
	assert.ErrorIs(t, err, model.ErrInvalidAccountCode)

	_, err = runLedgerlab(t, "accounts", "add", "1031", "Caja Chica", "--nature", "activo", "--group", "AC", "--dir", dir)
	assert.ErrorIs(t, err, model.ErrDuplicateAccountCode)

	_, err = runLedgerlab(t, "accounts", "edit", "1031", "--name", "Fondo Fijo", "--dir", dir)
	require.NoError(t, err)

	out, err = runLedgerlab(t, "accounts", "list", "--nature", "activo", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Fondo Fijo")
	assert.NotContains(t, out, "Ventas")

	out, err = runLedgerlab(t, "accounts", "list", "--filter", "FONDO", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1031")
	assert.NotContains(t, out, "Caja")

	out, err = runLedgerlab(t, "accounts", "list", "--filter", "mercader", "--nature", "gasto", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "6011")
	assert.NotContains(t, out, "7011", "nature and filter combine")

	_, err = runLedgerlab(t, "accounts", "list", "--nature", "otra", "--dir", dir)
	assert.ErrorIs(t, err, model.ErrMissingRequiredField)

	_, err = runLedgerlab(t, "accounts", "delete", "1031", "--dir", dir)
	require.NoError(t, err)
	out, err = runLedgerlab(t, "accounts", "list", "--dir", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "1031")
}

func TestEntry_AddAndReports(t *testing.T) {
	dir := initWorkbook(t)

	out, err := runLedgerlab(t, "entry", "add", "--dir", dir, "--date", "2025-03-12",
		"--line", "6011:1000:0:Compra de mercadería",
		"--line", "1011::1000:Pago: en efectivo")
	require.NoError(t, err)
	assert.Contains(t, out, "on 2025-03-12 (2 lines, S/1,000.00)")

	entries := readJournal(t, dir)
	require.Len(t, entries, 1)
	assert.Equal(t, "Pago: en efectivo", entries[0].Lines[1].Description)

	out, err = runLedgerlab(t, "ledger", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Deudor: S/1,000.00")
	assert.Contains(t, out, "Acreedor: S/1,000.00")

	out, err = runLedgerlab(t, "diary", "--filter", "mercader", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Compra de mercadería")

	out, err = runLedgerlab(t, "kpis", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Saldo neto  S/0.00")
}

func TestEntry_RejectsUnbalanced(t *testing.T) {
	dir := initWorkbook(t)

	_, err := runLedgerlab(t, "entry", "add", "--dir", dir, "--date", "2025-03-12",
		"--line", "6011:500:0", "--line", "1011:0:400")
	assert.ErrorIs(t, err, model.ErrUnbalanced)
	assert.Empty(t, readJournal(t, dir), "store must be unchanged")
}

func TestEntry_RejectsMalformedLine(t *testing.T) {
	dir := initWorkbook(t)

	_, err := runLedgerlab(t, "entry", "add", "--dir", dir, "--line", "6011:500", "--line", "1011:0:500")
	assert.ErrorIs(t, err, model.ErrIncompleteLine)

	_, err = runLedgerlab(t, "entry", "add", "--dir", dir, "--line", "6011:abc:0", "--line", "1011:0:500")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestScenarios_ListAndLoad(t *testing.T) {
	dir := initWorkbook(t)

	out, err := runLedgerlab(t, "scenarios", "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "planilla")

	out, err = runLedgerlab(t, "scenarios", "load", "planilla", "--date", "2025-03-31", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded scenario planilla")
	assert.NotEmpty(t, readJournal(t, dir))

	_, err = runLedgerlab(t, "scenarios", "load", "inexistente", "--dir", dir)
	require.Error(t, err)

	out, err = runLedgerlab(t, "kpis", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Errores          0")
}

func TestTrialBalance_ExportCSV(t *testing.T) {
	dir := initWorkbook(t)
	_, err := runLedgerlab(t, "entry", "add", "--dir", dir, "--date", "2025-03-12",
		"--line", "6011:1000:0", "--line", "1011:0:1000")
	require.NoError(t, err)

	out, err := runLedgerlab(t, "trial-balance", "--dir", dir, "--csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Totales")
	assert.Contains(t, out, "Exported 2 rows")

	data, err := os.ReadFile(filepath.Join(dir, report.CSVFileName))
	require.NoError(t, err)
	lines := strings.Split(string(data), "\r\n")
	assert.Equal(t, `"Código","Nombre","Naturaleza","Grupo","Debe","Haber","Saldo"`, lines[0])
	assert.Equal(t, `"1011","Caja","activo","Activo Corriente","0.00","1000.00","-1000.00"`, lines[1])

	custom := filepath.Join(t.TempDir(), "tb.csv")
	_, err = runLedgerlab(t, "trial-balance", "--dir", dir, "--filter", "caja", "--csv", "--out", custom)
	require.NoError(t, err)
	data, err = os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, 2, len(strings.Split(string(data), "\r\n")))

	_, err = runLedgerlab(t, "trial-balance", "--dir", dir, "--csv", "-o", "relativo.csv")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "relativo.csv"))
}

func TestTrialBalance_CSVToStdout(t *testing.T) {
	dir := initWorkbook(t)
	_, err := runLedgerlab(t, "entry", "add", "--dir", dir, "--date", "2025-03-12",
		"--line", "6011:1000:0", "--line", "1011:0:1000")
	require.NoError(t, err)

	out, err := runLedgerlab(t, "trial-balance", "--dir", dir, "--csv", "--out", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `"Código","Nombre"`), "only CSV is written: %q", out)
	assert.NotContains(t, out, "Totales")
	assert.NoFileExists(t, filepath.Join(dir, "-"))
	assert.NoFileExists(t, filepath.Join(dir, report.CSVFileName))
}

func TestVersion(t *testing.T) {
	out, err := runLedgerlab(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:")
}
