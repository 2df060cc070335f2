package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/validation"
)

const (
	addUsage    = "trackkeeper add <weight|habit|task> ..."
	listUsage   = "trackkeeper list <entries|habits|tasks> [--pull]"
	deleteUsage = "trackkeeper delete <entries|habits|tasks> <id>"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing record type. Usage: %s", ErrUsage, addUsage)
	}

	switch args[0] {
	case "weight":
		return c.runAddWeight(ctx, args[1:])
	case "habit":
		return c.runAddHabit(ctx, args[1:])
	case "task":
		return c.runAddTask(ctx, args[1:])
	default:
		return fmt.Errorf("%w: unknown record type %q. Usage: %s", ErrUsage, args[0], addUsage)
	}
}

func (c *Cli) runAddWeight(ctx context.Context, args []string) error {
	raw, err := c.argOrPrompt(args, "Weight (kg): ")
	if err != nil {
		return err
	}
	weight, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return fmt.Errorf("%w: invalid weight %q", ErrUsage, raw)
	}

	note := ""
	if len(args) > 1 {
		note = strings.Join(args[1:], " ")
	}

	entry, err := c.tracker.AddWeight(ctx, weight, note)
	if err != nil {
		return err
	}
	c.io.Printf("✓ Weight %.1f kg recorded (ID: %s)\n", entry.WeightKg, entry.ID)
	return nil
}

func (c *Cli) runAddHabit(ctx context.Context, args []string) error {
	name, err := c.joinedOrPrompt(args, "Habit name: ")
	if err != nil {
		return err
	}

	habit, err := c.tracker.AddHabit(ctx, name)
	if err != nil {
		return err
	}
	c.io.Printf("✓ Habit %q created (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

func (c *Cli) runAddTask(ctx context.Context, args []string) error {
	due := ""
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] == "--due" {
			if i+1 >= len(args) {
				return fmt.Errorf("%w: --due requires a date", ErrUsage)
			}
			due = args[i+1]
			i++
			continue
		}
		rest = append(rest, args[i])
	}

	title, err := c.joinedOrPrompt(rest, "Task title: ")
	if err != nil {
		return err
	}

	task, err := c.tracker.AddTask(ctx, title, due)
	if err != nil {
		return err
	}
	c.io.Printf("✓ Task %q created (ID: %s)\n", task.Title, task.ID)
	return nil
}

func (c *Cli) runToggle(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: trackkeeper toggle <habit-id> [YYYY-MM-DD]", ErrUsage)
	}
	day := ""
	if len(args) > 1 {
		day = args[1]
	}

	habit, marked, err := c.tracker.ToggleHabit(ctx, args[0], day)
	if err != nil {
		return err
	}
	if marked {
		c.io.Printf("✓ %s: marked (%d day(s) total)\n", habit.Name, len(habit.CompletedDates))
	} else {
		c.io.Printf("✓ %s: unmarked (%d day(s) total)\n", habit.Name, len(habit.CompletedDates))
	}
	return nil
}

func (c *Cli) runDone(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: trackkeeper done <task-id>", ErrUsage)
	}

	task, err := c.tracker.CompleteTask(ctx, args[0])
	if err != nil {
		return err
	}
	c.io.Printf("✓ Task %q completed\n", task.Title)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: %s", ErrUsage, deleteUsage)
	}

	if err := c.tracker.Delete(ctx, args[0], args[1]); err != nil {
		return err
	}
	c.io.Printf("✓ Deleted %s/%s\n", args[0], args[1])
	return nil
}

func (c *Cli) runList(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing collection. Usage: %s", ErrUsage, listUsage)
	}
	collection := args[0]
	if err := validation.ValidateCollection(collection); err != nil {
		return err
	}

	if len(args) > 1 && args[1] == "--pull" {
		if c.remote == nil {
			return fmt.Errorf("%w: server is not configured", ErrUsage)
		}
		n, err := c.tracker.Pull(ctx, c.remote, collection)
		if err != nil {
			// Показываем локальный кэш даже без сервера
			c.io.Printf("⚠️  Could not refresh from server: %v\n", err)
		} else {
			c.io.Printf("Refreshed %d record(s) from server\n", n)
		}
	}

	switch collection {
	case models.CollectionEntries:
		c.printWeights(ctx)
	case models.CollectionHabits:
		c.printHabits(ctx)
	case models.CollectionTasks:
		c.printTasks(ctx)
	}
	return nil
}

func (c *Cli) printWeights(ctx context.Context) {
	c.io.Println("=== Weight Entries ===")
	entries := c.tracker.Weights(ctx)
	if len(entries) == 0 {
		c.io.Println("No entries found. Use 'trackkeeper add weight <kg>' to add one.")
		return
	}
	for _, e := range entries {
		c.io.Printf("%s  %6.1f kg  %s  (%s)\n", e.RecordedAt.Local().Format("2006-01-02 15:04"), e.WeightKg, e.Note, e.ID)
	}
}

func (c *Cli) printHabits(ctx context.Context) {
	c.io.Println("=== Habits ===")
	habits := c.tracker.Habits(ctx)
	if len(habits) == 0 {
		c.io.Println("No habits found. Use 'trackkeeper add habit <name>' to add one.")
		return
	}
	for i, h := range habits {
		c.io.Printf("%d. %s\n", i+1, h.Name)
		c.io.Printf("   ID:   %s\n", h.ID)
		c.io.Printf("   Days: %d\n", len(h.CompletedDates))
	}
}

func (c *Cli) printTasks(ctx context.Context) {
	c.io.Println("=== Tasks ===")
	tasks := c.tracker.Tasks(ctx)
	if len(tasks) == 0 {
		c.io.Println("No tasks found. Use 'trackkeeper add task <title>' to add one.")
		return
	}
	for _, t := range tasks {
		mark := " "
		if t.Done {
			mark = "x"
		}
		line := fmt.Sprintf("[%s] %s", mark, t.Title)
		if t.DueDate != "" {
			line += " (due " + t.DueDate + ")"
		}
		c.io.Printf("%s  %s\n", line, t.ID)
	}
}

// argOrPrompt возвращает первый аргумент или запрашивает значение
func (c *Cli) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return value, nil
}

func (c *Cli) joinedOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return c.argOrPrompt(nil, prompt)
}
