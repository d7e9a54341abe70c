package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/auratech/finvault/internal/ledger"
	"github.com/auratech/finvault/internal/models"
)

var goalCollectionNames = map[string]ledger.GoalCollection{
	"goal":   ledger.Goals,
	"saving": ledger.Savings,
}

func parseGoalCollection(arg string) (ledger.GoalCollection, error) {
	c, ok := goalCollectionNames[strings.ToLower(arg)]
	if !ok {
		return "", fmt.Errorf("unknown collection %q (goal, saving)", arg)
	}
	return c, nil
}

func goalHistoryLabel(c ledger.GoalCollection) string {
	if c == ledger.Goals {
		return "objetivo"
	}
	return "ahorro"
}

// AddGoal appends a goal or saving record to the selected month.
func (a *App) AddGoal(ctx context.Context, collectionArg string) error {
	c, err := parseGoalCollection(collectionArg)
	if err != nil {
		fmt.Println(err)
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		return errors.New("name is required")
	}

	amount, err := GetAmount(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		fmt.Println("Amount not understood.")
		return err
	}

	a.led.AddGoal(c, a.monthKey(), models.GoalEntry{Name: name, Amount: amount})
	return a.persist(ctx, fmt.Sprintf("alta de %s %s", goalHistoryLabel(c), name))
}

// ListGoals prints the selected month's goals and savings.
func (a *App) ListGoals(ctx context.Context) error {
	key := a.monthKey()
	for _, c := range []ledger.GoalCollection{ledger.Goals, ledger.Savings} {
		items := a.led.Goals(c, key)
		fmt.Printf("%s:\n", c)
		if len(items) == 0 {
			fmt.Println("  (none)")
			continue
		}
		for i, g := range items {
			fmt.Printf("  [%d] %s  %s\n", i, g.Name, ledger.FormatARS(g.Amount))
		}
	}
	return nil
}

// DeleteGoal removes a goal or saving record from the selected month.
func (a *App) DeleteGoal(ctx context.Context, collectionArg string) error {
	c, err := parseGoalCollection(collectionArg)
	if err != nil {
		fmt.Println(err)
		return err
	}

	index, err := GetInt(a.reader, "Entry number", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return err
	}

	if err := a.led.DeleteGoal(c, a.monthKey(), index); err != nil {
		fmt.Println("No such entry.")
		return err
	}
	return a.persist(ctx, fmt.Sprintf("baja de %s #%d", goalHistoryLabel(c), index))
}
