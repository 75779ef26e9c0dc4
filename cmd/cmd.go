// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// productsCommand handles catalog operations
func productsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "products",
		Aliases: []string{"prod"},
		Usage:   "Browse the product catalog",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List products in the catalog",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of products to return",
						Value: 50,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.ProductsList,
			},
			{
				Name:  "show",
				Usage: "Show a single product with its specifications",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ProductsShow,
			},
			{
				Name:  "search",
				Usage: "Search products by name or description",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ProductsSearch,
			},
			{
				Name:  "categories",
				Usage: "List product categories",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ProductsCategories,
			},
			{
				Name:  "export",
				Usage: "Export the catalog to disk",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: json, csv, markdown",
						Value: "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent export workers",
						Value: 5,
					},
				},
				Action: r.ProductsExport,
			},
		},
	}
}

// cartCommand handles shopping cart operations
func cartCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "Manage the shopping cart",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show cart contents and totals",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CartShow,
			},
			{
				Name:  "add",
				Usage: "Add a product to the cart",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "quantity",
						Aliases: []string{"q"},
						Usage:   "Quantity to add",
						Value:   1,
					},
				},
				Action: r.CartAdd,
			},
			{
				Name:  "remove",
				Usage: "Remove a product from the cart",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.CartRemove,
			},
			{
				Name:  "update",
				Usage: "Set the quantity of a cart line",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "quantity",
						Aliases:  []string{"q"},
						Usage:    "New quantity (0 removes the line)",
						Required: true,
					},
				},
				Action: r.CartUpdate,
			},
			{
				Name:   "clear",
				Usage:  "Remove every line from the cart",
				Action: r.CartClear,
			},
			{
				Name:  "order",
				Usage: "Build a WhatsApp order link for a product",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "open",
						Usage: "Open the link in the system browser",
					},
				},
				Action: r.CartOrder,
			},
		},
	}
}

// adminCommand handles authenticated store mutations
func adminCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "Authenticated store administration",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authenticate against the admin API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Admin account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Admin account password",
						Required: true,
					},
				},
				Action: r.AdminLogin,
			},
			{
				Name:  "import-auth",
				Usage: "Import a bearer token from a browser cURL command",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "curl",
						Usage: "cURL command from browser DevTools (Copy as cURL)",
					},
					&cli.StringFlag{
						Name:  "curl-file",
						Usage: "Path to .sh file containing cURL command",
					},
				},
				Action: r.AdminImportAuth,
			},
			{
				Name:   "status",
				Usage:  "Check current authentication state",
				Action: r.AdminStatus,
			},
			{
				Name:   "logout",
				Usage:  "Discard the stored admin token",
				Action: r.AdminLogout,
			},
			{
				Name:  "update",
				Usage: "Update a product's details and specifications",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "Product name",
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Product description",
					},
					&cli.StringFlag{
						Name:  "price",
						Usage: "Product price",
					},
					&cli.StringFlag{
						Name:  "stock",
						Usage: "Stock count",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "Category ID",
					},
					&cli.StringFlag{
						Name:  "image",
						Usage: "Path to a product image to upload",
					},
					&cli.StringSliceFlag{
						Name:    "spec",
						Aliases: []string{"s"},
						Usage:   "Specification entry as key=value (repeatable, ordered)",
					},
				},
				Action: r.AdminUpdate,
			},
		},
	}
}

// setupCommand handles setup operations for the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
					&cli.BoolFlag{
						Name:  "rollback",
						Usage: "Roll back the most recent migration",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive shopping.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive storefront",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "admin",
				Usage: "Enable the product editor view",
			},
		},
		Action: r.TUI,
	}
}
