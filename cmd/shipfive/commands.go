package main

import (
	"fmt"
	"io"
	"strings"

	"shipfive/internal/version"
	"shipfive/pkg/progress"
	"shipfive/pkg/wizard"

	"github.com/spf13/cobra"
)

func newStatusCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show stored progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			record := a.Adapter.Load()
			if asJSON {
				data, err := progress.Encode(record)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			printStatus(cmd.OutOrStdout(), record, a.StorageAvailable())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored record as JSON")
	return cmd
}

func printStatus(w io.Writer, r progress.Record, stored bool) {
	if !stored {
		fmt.Fprintln(w, "Storage unavailable; showing defaults.")
	}

	onboarding := "not started"
	if r.OnboardingComplete {
		onboarding = "complete"
	}
	fmt.Fprintf(w, "Onboarding: %s\n", onboarding)

	day1 := "in progress"
	if r.Day1Complete {
		day1 = "complete"
	}
	fmt.Fprintf(w, "Day 1:      %s (%d/%d defined)\n", day1, r.Checklist.Completed(), r.Checklist.Total())

	for i, item := range wizard.Items() {
		box := "[ ]"
		if r.Checklist.Get(item.Key) {
			box = "[x]"
		}
		fmt.Fprintf(w, "  %d. %s %s (%s)\n", i+1, box, item.Label, item.Key)
	}
}

func newResetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget all stored progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Adapter.Reset(); err != nil {
				return fmt.Errorf("reset progress: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared.")
			return nil
		},
	}
}

func checklistKeyNames() string {
	names := make([]string, 0, len(progress.ChecklistKeys))
	for _, k := range progress.ChecklistKeys {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check <item>",
		Short: "Toggle a Day 1 checklist item",
		Long:  "Toggle a Day 1 checklist item. Items: " + checklistKeyNames() + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, ok := progress.ParseChecklistKey(args[0])
			if !ok {
				return fmt.Errorf("unknown item %q (want one of %s)", args[0], checklistKeyNames())
			}

			a, err := c.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			a.Machine.Initialize()
			if !a.Machine.ToggleChecklistItem(key) {
				return fmt.Errorf("finish onboarding before working on Day 1")
			}

			state := "unchecked"
			if a.Machine.Snapshot().Record.Checklist.Get(key) {
				state = "checked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", key, state, a.Machine.Snapshot().Progress())
			return nil
		},
	}
}

func newCompleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Mark Day 1 complete",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			a.Machine.Initialize()
			if !a.Machine.CompleteDay1() {
				return fmt.Errorf("finish onboarding before working on Day 1")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Day 1 Complete. Tomorrow: Build the structure.")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.Long())
			return nil
		},
	}
}
