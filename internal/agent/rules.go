package agent

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/budget-chat/internal/budgeterror"
	"fjacquet/budget-chat/internal/currencyutils"
	"fjacquet/budget-chat/internal/ledger"
)

const (
	noCategoriesHint = "No categories yet. Try: set Food to $200"
	setHint          = "I couldn't parse that. Try: set Food to $200"
	spentHint        = "I couldn't parse that. Try: spent $12 on Food"
	negativeHint     = "Amounts can't be negative. Try: set Food to $200"
	unknownHint      = "Unknown category. Say 'list categories' or create it with 'set <name> to <amount>'."
)

// rule is one entry of the interpreter's ordered rule table. apply returns
// the response, whether the rule claimed the input, and any fault that must
// propagate (persistence failures only; user-text problems become hint
// responses with matched == true).
type rule struct {
	name  string
	apply func(text string) (resp string, matched bool, err error)
}

// ruleTable builds the intent rules in priority order. The table is
// evaluated top-to-bottom and the first rule that claims the input wins.
func (a *Agent) ruleTable() []rule {
	return []rule{
		{name: "help", apply: exactRule([]string{"help", "?"}, a.helpText)},
		{name: "summary", apply: exactRule([]string{"status", "summary", "show summary"}, a.renderSummary)},
		{name: "list-categories", apply: exactRule([]string{"list categories", "categories"}, a.listCategories)},
		{name: "save", apply: a.saveRule},
		{name: "quit", apply: a.quitRule},
		{name: "add-category", apply: a.addCategoryRule},
		{name: "set-allocation", apply: a.setRule},
		{name: "record-expense", apply: a.spendRule},
	}
}

// exactRule matches when the trimmed, lowered input equals one of the
// trigger phrases.
func exactRule(triggers []string, respond func() string) func(string) (string, bool, error) {
	return func(text string) (string, bool, error) {
		lower := strings.ToLower(strings.TrimSpace(text))
		for _, trigger := range triggers {
			if lower == trigger {
				return respond(), true, nil
			}
		}
		return "", false, nil
	}
}

func (a *Agent) helpText() string {
	return strings.Join([]string{
		"Commands:",
		"- set Food to $200",
		"- add category Travel to $300",
		"- spent $12.50 on Food",
		"- add 5 to Fun",
		"- show summary",
		"- list categories",
		"- save | quit",
	}, "\n")
}

func (a *Agent) renderSummary() string {
	summaries := a.ledger.Summary()
	if len(summaries) == 0 {
		return noCategoriesHint
	}

	lines := make([]string, 0, len(summaries))
	for _, row := range summaries {
		lines = append(lines, fmt.Sprintf("- %s: %s%% | %s / %s | left %s",
			row.Name,
			percentUsed(row),
			currencyutils.FormatUSD(row.Spent),
			currencyutils.FormatUSD(row.Allocation),
			currencyutils.FormatUSD(row.Remaining),
		))
	}
	return strings.Join(lines, "\n")
}

// percentUsed renders the share of the allocation spent, clamped to
// [0, 100] for display.
func percentUsed(row ledger.CategorySummary) string {
	if row.Allocation.IsZero() {
		return "0"
	}
	pct := row.Spent.Div(row.Allocation).Mul(decimal.NewFromInt(100))
	hundred := decimal.NewFromInt(100)
	if pct.IsNegative() {
		pct = decimal.Zero
	} else if pct.GreaterThan(hundred) {
		pct = hundred
	}
	return pct.Round(0).String()
}

func (a *Agent) listCategories() string {
	names := a.ledger.Categories()
	if len(names) == 0 {
		return noCategoriesHint
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return "Categories: " + strings.Join(sorted, ", ")
}

func (a *Agent) saveRule(text string) (string, bool, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower != "save" && lower != "persist" {
		return "", false, nil
	}
	if err := a.save(); err != nil {
		return "", true, err
	}
	return "Saved.", true, nil
}

func (a *Agent) quitRule(text string) (string, bool, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower != "quit" && lower != "exit" {
		return "", false, nil
	}
	if err := a.save(); err != nil {
		return "", true, err
	}
	return Farewell, true, nil
}

// addCategoryRule handles "add category <name> [to|=|with <amount>]".
// Without an amount the category is created with a zero allocation and the
// response prompts for a later set command.
func (a *Agent) addCategoryRule(text string) (string, bool, error) {
	trimmed := strings.TrimSpace(text)
	remainder, ok := stripAnyPrefixFold(trimmed, "add category ", "create category ", "new category ")
	if !ok {
		return "", false, nil
	}

	name := strings.TrimSpace(remainder)
	amount := decimal.Zero
	for _, sep := range []string{" to ", "=", " with "} {
		if before, after, found := cutFold(remainder, sep); found {
			parsed, err := currencyutils.ParseAmount(after)
			if err != nil {
				return setHint, true, nil
			}
			name = strings.TrimSpace(before)
			amount = parsed
			break
		}
	}

	if name == "" {
		return setHint, true, nil
	}
	if amount.IsNegative() {
		return negativeHint, true, nil
	}

	result := a.ledger.SetCategory(name, amount)
	if err := a.save(); err != nil {
		return "", true, err
	}

	if amount.IsZero() {
		return fmt.Sprintf("Added category %s with %s. Set a budget with 'set %s to <amount>'.",
			name, currencyutils.FormatUSD(amount), name), true, nil
	}
	return setResponse(name, amount, result), true, nil
}

// setRule handles "set <name> to <amount>", "<name> = <amount>" and
// "<name> to <amount>". A bare " to " only triggers when the text is not an
// expense phrasing, so "add 5 to Fun" falls through to the expense rule.
func (a *Agent) setRule(text string) (string, bool, error) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	spendLike := strings.Contains(lower, "spent") || strings.HasPrefix(lower, "add ")
	triggered := strings.Contains(lower, "set ") ||
		strings.Contains(lower, "=") ||
		(strings.Contains(lower, " to ") && !spendLike)
	if !triggered {
		return "", false, nil
	}

	var namePart, amountPart string
	if before, after, found := cutFold(trimmed, " to "); found {
		namePart, amountPart = before, after
	} else if before, after, found := cutFold(trimmed, "="); found {
		namePart, amountPart = before, after
	} else {
		return setHint, true, nil
	}

	name := strings.TrimSpace(stripLeadingWordFold(strings.TrimSpace(namePart), "set"))
	if name == "" {
		return setHint, true, nil
	}

	amount, err := currencyutils.ParseAmount(amountPart)
	if err != nil {
		return setHint, true, nil
	}
	if amount.IsNegative() {
		return negativeHint, true, nil
	}

	result := a.ledger.SetCategory(name, amount)
	if err := a.save(); err != nil {
		return "", true, err
	}
	return setResponse(name, amount, result), true, nil
}

func setResponse(name string, amount decimal.Decimal, result ledger.SetResult) string {
	if result == ledger.Updated {
		return fmt.Sprintf("Updated %s to %s.", name, currencyutils.FormatUSD(amount))
	}
	return fmt.Sprintf("Set %s to %s.", name, currencyutils.FormatUSD(amount))
}

// spendRule handles "spent <amount> on <category>" and
// "add <amount> to <category>". The category text is resolved through the
// matcher, so loose descriptions land in the closest existing category.
func (a *Agent) spendRule(text string) (string, bool, error) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	if !strings.Contains(lower, "spent") && !strings.Contains(lower, "add ") {
		return "", false, nil
	}

	var amountText, categoryText string
	switch {
	case strings.Contains(lower, "spent") && strings.Contains(lower, " on "):
		before, after, _ := cutFold(trimmed, " on ")
		amountText = strings.TrimSpace(removeWordFold(before, "spent"))
		categoryText = strings.TrimSpace(after)
	case strings.Contains(lower, "add "):
		_, rest, _ := cutFold(trimmed, "add ")
		before, after, found := cutFold(rest, " to ")
		if !found {
			return spentHint, true, nil
		}
		amountText = strings.TrimSpace(before)
		categoryText = strings.TrimSpace(after)
	default:
		return spentHint, true, nil
	}

	amount, err := currencyutils.ParseAmount(amountText)
	if err != nil {
		return spentHint, true, nil
	}
	if amount.IsNegative() {
		return negativeHint, true, nil
	}

	match, err := a.matcher.Resolve(categoryText, a.ledger.Categories())
	if err != nil {
		var noMatch *budgeterror.NoMatchError
		if errors.As(err, &noMatch) {
			return unknownHint, true, nil
		}
		return "", true, err
	}

	if err := a.ledger.AddSpend(match.Category, amount); err != nil {
		// The matcher only returns known categories; anything else is a
		// programming error and must propagate.
		return "", true, err
	}
	if err := a.save(); err != nil {
		return "", true, err
	}

	if match.Exact {
		return fmt.Sprintf("Added %s to %s.", currencyutils.FormatUSD(amount), match.Category), true, nil
	}
	return fmt.Sprintf("Added %s to %s (auto-categorized '%s').",
		currencyutils.FormatUSD(amount), match.Category, categoryText), true, nil
}

// cutFold splits text around the first case-insensitive occurrence of sep,
// preserving the original casing of both halves.
func cutFold(text, sep string) (before, after string, found bool) {
	idx := strings.Index(strings.ToLower(text), strings.ToLower(sep))
	if idx < 0 {
		return text, "", false
	}
	return text[:idx], text[idx+len(sep):], true
}

// stripAnyPrefixFold removes the first matching case-insensitive prefix.
func stripAnyPrefixFold(text string, prefixes ...string) (string, bool) {
	lower := strings.ToLower(text)
	for _, prefix := range prefixes {
		if strings.HasPrefix(lower, prefix) {
			return text[len(prefix):], true
		}
	}
	return text, false
}

// stripLeadingWordFold removes a leading word (case-insensitive) and any
// whitespace after it.
func stripLeadingWordFold(text, word string) string {
	lower := strings.ToLower(text)
	if lower == word {
		return ""
	}
	if strings.HasPrefix(lower, word+" ") {
		return strings.TrimSpace(text[len(word)+1:])
	}
	return text
}

// removeWordFold removes the first case-insensitive occurrence of word.
func removeWordFold(text, word string) string {
	idx := strings.Index(strings.ToLower(text), word)
	if idx < 0 {
		return text
	}
	return text[:idx] + text[idx+len(word):]
}
