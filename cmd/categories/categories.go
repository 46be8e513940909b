// Package categories handles category management commands
package categories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Sandeep0076/budget-sage/cmd/common"
	"github.com/Sandeep0076/budget-sage/cmd/root"
	"github.com/Sandeep0076/budget-sage/internal/logging"
	"github.com/Sandeep0076/budget-sage/internal/models"
)

var (
	name     string
	color    string
	income   bool
	keywords string
)

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage spending categories",
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category",
	Run:   addFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Run:   listFunc,
}

func addFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)

	if strings.TrimSpace(name) == "" {
		root.Log.Fatal("Category name is required")
	}

	category := models.Category{
		ID:     uuid.NewString(),
		Name:   strings.TrimSpace(name),
		Color:  color,
		Income: income,
	}
	if keywords != "" {
		for _, kw := range strings.Split(keywords, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				category.Keywords = append(category.Keywords, kw)
			}
		}
	}

	created, err := s.CreateCategory(ctx, category)
	if err != nil {
		root.Log.Fatalf("Error saving category: %v", err)
	}
	root.Log.WithField(logging.FieldCategory, created.Name).Info("Category added")
	fmt.Printf("%s  %s\n", created.ID, created.Name)
}

func listFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	s := common.OpenStore(root.DataDir(), root.Log)

	categories, err := s.ListCategories(ctx)
	if err != nil {
		root.Log.Fatalf("Error listing categories: %v", err)
	}

	for _, category := range categories {
		kind := "expense"
		if category.Income {
			kind = "income"
		}
		fmt.Printf("%s  %s (%s)\n", category.ID, category.Name, kind)
	}
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)

	addCmd.Flags().StringVarP(&name, "name", "n", "", "Category name (required)")
	addCmd.Flags().StringVarP(&color, "color", "c", "", "Display color, e.g. #ff8800")
	addCmd.Flags().BoolVarP(&income, "income", "i", false, "Whether the category tracks income")
	addCmd.Flags().StringVarP(&keywords, "keywords", "k", "", "Comma-separated keywords for automatic matching")
	_ = addCmd.MarkFlagRequired("name")
}
