package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/2beens/movimentai/internal/exercises"
	"github.com/2beens/movimentai/internal/workouts/templates"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	templateDays     int
	templateOn       string
	templateAge      int
	templateSex      string
	templateActivity string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Preview the fixed split template for a week",
	RunE: func(cmd *cobra.Command, args []string) error {
		splits, err := templates.Select(templateDays, parseDays(templateOn))
		if err != nil {
			return err
		}
		difficulty := templates.Difficulty(templateAge, templateSex, templateActivity)
		printSplits(cmd.OutOrStdout(), splits, difficulty)
		return nil
	},
}

func init() {
	addSplitFlags(templateCmd)
	templateCmd.Flags().IntVar(&templateAge, "age", 30, "age used for the difficulty")
	templateCmd.Flags().StringVar(&templateSex, "sex", "male", "sex used for the difficulty [male | female]")
	templateCmd.Flags().StringVar(&templateActivity, "activity", "moderate", "activity level [sedentary | light | moderate | active]")
}

func addSplitFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&templateDays, "days", 3, "training days per week [3-6]")
	cmd.Flags().StringVar(&templateOn, "on", "Seg,Qua,Sex", "comma separated weekdays (Seg,Ter,Qua,Qui,Sex,Sáb,Dom)")
}

func parseDays(raw string) []string {
	var days []string
	for _, d := range strings.Split(raw, ",") {
		if d = strings.TrimSpace(d); d != "" {
			days = append(days, d)
		}
	}
	return days
}

func printSplits(out io.Writer, splits templates.Splits, difficulty string) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	for _, day := range templates.SortDays(keys(splits)) {
		split := splits[day]
		bold.Fprintf(out, "%-4s %s\n", day, split.Name)
		for _, id := range split.Exercises {
			faint.Fprintf(out, "     - %s (%s)\n", exercises.Title(id), id)
		}
	}
	fmt.Fprintf(out, "\n%d exercises, difficulty: %s\n", splits.ExercisesCount(), difficulty)
}

func keys(splits templates.Splits) []string {
	days := make([]string, 0, len(splits))
	for d := range splits {
		days = append(days, d)
	}
	return days
}
