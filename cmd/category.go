package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartanki/smartanki/internal/store"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage card categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		repo := e.store.CategoryRepo()
		parentRef, _ := cmd.Flags().GetString("parent")
		parent, err := resolveCategory(cmd, repo, parentRef)
		if err != nil {
			return err
		}
		desc, _ := cmd.Flags().GetString("description")

		c, err := repo.Create(cmd.Context(), store.NewCategory{
			Name:        args[0],
			Description: desc,
			ParentID:    categoryIDOf(parent),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created category %d %q\n", c.ID, c.Name)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with card counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, true)
		if err != nil {
			return err
		}
		defer e.Close()

		cats, err := e.store.CategoryRepo().List(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(cats) == 0 {
			fmt.Fprintln(out, "No categories.")
			return nil
		}
		fmt.Fprintf(out, "%-5s  %-24s  %6s  %-8s  %s\n", "ID", "Name", "Cards", "Enabled", "Parent")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, c := range cats {
			parent := ""
			if c.ParentID != nil {
				parent = fmt.Sprint(*c.ParentID)
			}
			enabled := "yes"
			if !c.IsEnabled {
				enabled = "no"
			}
			fmt.Fprintf(out, "%-5d  %-24s  %6d  %-8s  %s\n", c.ID, truncate(c.Name, 24), c.CardCount, enabled, parent)
		}
		return nil
	},
}

func setEnabledCmd(use, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name|id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, true)
			if err != nil {
				return err
			}
			defer e.Close()

			repo := e.store.CategoryRepo()
			c, err := resolveCategory(cmd, repo, args[0])
			if err != nil {
				return err
			}
			if _, err := repo.SetEnabled(cmd.Context(), c.ID, enabled); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%sd category %q\n", use, c.Name)
			return nil
		},
	}
}

func init() {
	categoryAddCmd.Flags().StringP("description", "d", "", "Description")
	categoryAddCmd.Flags().String("parent", "", "Parent category name or id")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(setEnabledCmd("enable", "Include a category's cards in the due set", true))
	categoryCmd.AddCommand(setEnabledCmd("disable", "Exclude a category's cards from the due set", false))
}
