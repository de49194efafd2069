// pantryctl is a small terminal front end for the pantry tracker. It
// drives the client synchronization core against a running server and
// keeps its session in a local cache file, so login survives restarts.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/MauItu/inventario-alimentos/client"
	"github.com/MauItu/inventario-alimentos/config"
	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/logger"
)

var (
	serverURL string
	cachePath string
	state     *client.State
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	root := &cobra.Command{
		Use:   "pantryctl",
		Short: "Track pantry items and request recipe suggestions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cachePath == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					home = "."
				}
				cachePath = filepath.Join(home, ".inventario", "session.json")
			}
			state = client.NewState(client.NewAPI(serverURL), client.NewCache(cachePath))
		},
	}
	root.PersistentFlags().StringVar(&serverURL, "server", config.GetEnv("PANTRY_SERVER", "http://localhost:8080"), "server base URL")
	root.PersistentFlags().StringVar(&cachePath, "cache", "", "session cache file (default ~/.inventario/session.json)")

	root.AddCommand(registerCmd(), loginCmd(), logoutCmd(), listCmd(), addCmd(), deleteCmd(), recipesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <email>",
		Short: "Create a new account (does not log in)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.CreateAccount(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("account created, run `pantryctl login` to sign in")
			return nil
		},
	}
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in with a registered email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.Login(context.Background(), args[0]); err != nil {
				return err
			}
			if err := state.FetchItems(context.Background()); err != nil {
				return err
			}
			fmt.Printf("logged in as %s (%d items)\n", args[0], len(state.Items()))
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state.Logout()
			fmt.Println("logged out")
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the pantry items of the active session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.FetchItems(context.Background()); err != nil {
				return err
			}
			items := state.Items()
			if len(items) == 0 {
				fmt.Println("pantry is empty")
				return nil
			}
			for _, item := range items {
				expires := "-"
				if item.ExpirationDate != nil {
					expires = item.ExpirationDate.Format("2006-01-02")
				}
				fmt.Printf("%s  %-20s %8g %-8s %-10s expires: %s\n",
					item.ID, item.Name, item.Quantity, item.Unit, item.Category, expires)
			}
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var (
		category   string
		unit       string
		quantity   float64
		perishable bool
		expiration string
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to the pantry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := &entity.Item{
				Name:       args[0],
				Category:   entity.Category(category),
				Perishable: perishable,
				Quantity:   quantity,
				Unit:       entity.Unit(unit),
				EntryDate:  time.Now(),
			}
			if expiration != "" {
				t, err := time.Parse("2006-01-02", expiration)
				if err != nil {
					return fmt.Errorf("invalid expiration date %q, want YYYY-MM-DD", expiration)
				}
				item.ExpirationDate = &t
			}
			created, err := state.AddItem(context.Background(), item)
			if err != nil {
				return err
			}
			fmt.Printf("added %s (id %s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", string(entity.CategoryOtros), "item category (lacteos, proteina, verduras, frutas, granos, otros)")
	cmd.Flags().StringVar(&unit, "unit", string(entity.UnitUnidades), "measurement unit (unidades, kg, g, l, ml)")
	cmd.Flags().Float64Var(&quantity, "quantity", 1, "quantity, must be positive")
	cmd.Flags().BoolVar(&perishable, "perishable", false, "whether the item expires")
	cmd.Flags().StringVar(&expiration, "expires", "", "expiration date (YYYY-MM-DD), required for perishable items")
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := state.DeleteItem(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}
}

func recipesCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Generate a weekly recipe plan from the pantry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := state.GenerateRecipes(context.Background())
			if err != nil {
				return err
			}
			for _, recipe := range result.Recipes {
				fmt.Printf("%s: %s\n", recipe.Day, recipe.Title)
			}
			if err := os.WriteFile(output, result.Document, 0o644); err != nil {
				return fmt.Errorf("write recipe document: %w", err)
			}
			fmt.Println("recipe plan written to", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "recetas.pdf", "path of the PDF to write")
	return cmd
}
