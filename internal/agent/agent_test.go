package agent

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/budget-chat/internal/logging"
	"fjacquet/budget-chat/internal/matcher"
	"fjacquet/budget-chat/internal/store"
)

func newTestAgent(t *testing.T) (*Agent, *store.StateStore) {
	t.Helper()
	logger := &logging.MockLogger{}
	stateStore := store.NewStateStore(filepath.Join(t.TempDir(), "budget_state.json"), logger)

	l, err := stateStore.Load()
	require.NoError(t, err)

	return New(l, matcher.New(logger), stateStore, logger), stateStore
}

func handle(t *testing.T, a *Agent, text string) string {
	t.Helper()
	resp, err := a.Handle(text)
	require.NoError(t, err)
	return resp
}

func TestHandleBasicSession(t *testing.T) {
	a, _ := newTestAgent(t)

	assert.Contains(t, handle(t, a, "summary"), "No categories")
	assert.Equal(t, "Set Food to $200.00.", handle(t, a, "set Food to $200"))
	assert.Equal(t, "Added $50.00 to Food.", handle(t, a, "spent $50 on food"))

	out := handle(t, a, "summary")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "25%")
	assert.Contains(t, out, "$50.00")
}

func TestHandleAutoCategorize(t *testing.T) {
	a, _ := newTestAgent(t)

	handle(t, a, "set Food to $100")

	out := handle(t, a, "spent 30 on groceries")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "auto-categorized")
	assert.Contains(t, out, "groceries")

	assert.Contains(t, handle(t, a, "summary"), "$30.00")
}

func TestHandleSpendWithNoCategories(t *testing.T) {
	a, _ := newTestAgent(t)

	out := handle(t, a, "spent 30 on groceries")
	assert.Contains(t, out, "Unknown category")
	assert.Equal(t, 0, a.Ledger().Len())
}

func TestHandleAddCategory(t *testing.T) {
	a, _ := newTestAgent(t)

	out := handle(t, a, "add category Travel to $300")
	assert.Contains(t, out, "Travel")
	assert.Contains(t, out, "$300.00")

	out = handle(t, a, "create category Utilities")
	assert.Contains(t, out, "Added category Utilities")
	assert.Contains(t, out, "$0.00")

	summary := handle(t, a, "summary")
	assert.Contains(t, summary, "Travel")
	assert.Contains(t, summary, "Utilities")
}

func TestHandleEqualsForm(t *testing.T) {
	a, _ := newTestAgent(t)

	assert.Equal(t, "Set Food to $200.00.", handle(t, a, "Food = 200"))
}

func TestHandleAddExpenseForm(t *testing.T) {
	a, _ := newTestAgent(t)

	handle(t, a, "set Fun to $50")
	assert.Equal(t, "Added $5.00 to Fun.", handle(t, a, "add 5 to Fun"))
}

func TestHandleUpdateWording(t *testing.T) {
	a, _ := newTestAgent(t)

	handle(t, a, "set Food to $100")
	assert.Equal(t, "Updated Food to $250.00.", handle(t, a, "set Food to $250"))
}

func TestHandleParseFailures(t *testing.T) {
	a, _ := newTestAgent(t)

	assert.Contains(t, handle(t, a, "set Food to banana"), "couldn't parse")
	assert.Contains(t, handle(t, a, "set to $20"), "couldn't parse")

	handle(t, a, "set Food to $100")
	assert.Contains(t, handle(t, a, "spent banana on food"), "couldn't parse")
	assert.Contains(t, handle(t, a, "add 5 from Food"), "couldn't parse")
}

func TestHandleNegativeAmount(t *testing.T) {
	a, _ := newTestAgent(t)

	assert.Contains(t, handle(t, a, "set Food to -50"), "can't be negative")

	handle(t, a, "set Food to $100")
	assert.Contains(t, handle(t, a, "spent -5 on food"), "can't be negative")
}

func TestHandleControlCommands(t *testing.T) {
	a, stateStore := newTestAgent(t)

	help := handle(t, a, "help")
	assert.Contains(t, help, "set Food to $200")
	assert.Contains(t, help, "list categories")
	assert.Equal(t, help, handle(t, a, "?"))

	handle(t, a, "set Food to $100")
	handle(t, a, "set Apples to $10")
	assert.Equal(t, "Categories: Apples, Food", handle(t, a, "list categories"))

	assert.Equal(t, "Saved.", handle(t, a, "save"))
	assert.FileExists(t, stateStore.Path())
}

func TestHandleQuitSavesAndReturnsFarewell(t *testing.T) {
	a, stateStore := newTestAgent(t)

	handle(t, a, "set Food to $100")
	assert.Equal(t, Farewell, handle(t, a, "quit"))
	assert.FileExists(t, stateStore.Path())
}

func TestHandleUnrecognizedInput(t *testing.T) {
	a, _ := newTestAgent(t)

	out := handle(t, a, "what is the meaning of life")
	assert.Contains(t, out, "didn't understand")
	assert.Equal(t, 0, a.Ledger().Len())
}

func TestHandleRecordsHistory(t *testing.T) {
	a, _ := newTestAgent(t)

	handle(t, a, "help")
	history := a.History()
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "help", history[0].Content)
	assert.Equal(t, "agent", history[1].Role)
}

func TestStatePersistsAcrossSessions(t *testing.T) {
	logger := &logging.MockLogger{}
	path := filepath.Join(t.TempDir(), "budget_state.json")
	stateStore := store.NewStateStore(path, logger)

	l, err := stateStore.Load()
	require.NoError(t, err)
	a := New(l, matcher.New(logger), stateStore, logger)
	handle(t, a, "set Food to $200")
	handle(t, a, "spent $50 on food")

	reloaded, err := stateStore.Load()
	require.NoError(t, err)
	b := New(reloaded, matcher.New(logger), stateStore, logger)

	out := handle(t, b, "summary")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "$50.00")
	assert.Contains(t, out, "$200.00")
}

func TestHandleOverspendClampsPercent(t *testing.T) {
	a, _ := newTestAgent(t)

	handle(t, a, "set Fun to $50")
	handle(t, a, "spent $80 on fun")

	out := handle(t, a, "summary")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "-$30.00")
}
