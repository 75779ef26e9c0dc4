package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/JAX838/delight-vision-sounds/internal/forms"
	"github.com/JAX838/delight-vision-sounds/internal/models"
	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

// AdminLogin authenticates against the admin API and stores the token.
func (r *Runner) AdminLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	if r.admin == nil {
		return fmt.Errorf("uninitialized admin service")
	}

	r.logger.Info("logging in to admin API", "email", email)

	if err := r.admin.Login(ctx, email, password); err != nil {
		return err
	}

	r.writePlain("✓ Logged in as %s\n", email)
	r.writePlain("Token saved to %s\n", r.config.Auth.TokenFile())
	return nil
}

// AdminImportAuth imports a bearer token from a browser cURL command.
//
// Copy the request for any authenticated admin page as cURL from the browser
// DevTools and pass it via --curl or --curl-file.
func (r *Runner) AdminImportAuth(ctx context.Context, cmd *cli.Command) error {
	curlCmd := cmd.String("curl")
	curlFile := cmd.String("curl-file")

	if curlCmd == "" && curlFile == "" {
		return fmt.Errorf("%w: either --curl or --curl-file must be provided", shared.ErrMissingArgument)
	}
	if curlCmd != "" && curlFile != "" {
		return fmt.Errorf("%w: cannot specify both --curl and --curl-file", shared.ErrInvalidArgument)
	}

	r.logger.Info("parsing cURL command for admin bearer token")

	var curlHeaders *shared.CurlHeaders
	var err error

	if curlFile != "" {
		curlHeaders, err = shared.ParseCurlFile(curlFile)
		if err != nil {
			return fmt.Errorf("failed to parse cURL file: %w", err)
		}
		r.logger.Info("parsed cURL from file", "file", curlFile)
	} else {
		curlHeaders, err = shared.ParseCurlCommand([]byte(curlCmd))
		if err != nil {
			return fmt.Errorf("failed to parse cURL command: %w", err)
		}
		r.logger.Info("parsed cURL command")
	}

	token, err := curlHeaders.BearerToken()
	if err != nil {
		return err
	}

	if err := r.admin.ImportToken(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	r.writePlain("✓ Admin token imported\n")
	r.writePlain("Token saved to: %s\n", r.config.Auth.TokenFile())
	return nil
}

// AdminStatus reports whether a usable admin token is stored.
func (r *Runner) AdminStatus(ctx context.Context, cmd *cli.Command) error {
	if r.admin.Authenticated() {
		r.writePlain("✓ Authenticated\n")
		return nil
	}
	r.writePlain("Not authenticated. Run 'dvs admin login' first.\n")
	return nil
}

// AdminLogout discards the stored admin token.
func (r *Runner) AdminLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.admin.Logout(); err != nil {
		return err
	}
	r.writePlain("✓ Logged out\n")
	return nil
}

// AdminUpdate updates a product's details and specifications.
//
// Flags that are not provided keep the product's current values; --spec
// entries, when present, replace the specification list in the given order.
func (r *Runner) AdminUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: product id", shared.ErrMissingArgument)
	}

	product, err := r.catalog.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch product: %w", err)
	}

	form := forms.NewProductForm(*product)
	if v := cmd.String("name"); v != "" {
		form.Name = v
	}
	if v := cmd.String("description"); v != "" {
		form.Description = v
	}
	if v := cmd.String("price"); v != "" {
		form.Price = v
	}
	if v := cmd.String("stock"); v != "" {
		form.Stock = v
	}
	if v := cmd.String("category"); v != "" {
		form.CategoryID = v
	}
	if v := cmd.String("image"); v != "" {
		form.ImagePath = v
	}

	if specs := cmd.StringSlice("spec"); len(specs) > 0 {
		entries, err := parseSpecFlags(specs)
		if err != nil {
			return err
		}
		form.Specs.Hydrate(entries)
	}

	if err := r.shopEngine(nil).SubmitProductEdit(ctx, id, form); err != nil {
		return err
	}

	r.writePlain("✓ Product updated: %s\n", form.Name)
	return nil
}

// parseSpecFlags converts repeated key=value flags into ordered entries.
func parseSpecFlags(raw []string) ([]models.Specification, error) {
	entries := make([]models.Specification, 0, len(raw))
	for _, item := range raw {
		key, value, found := strings.Cut(item, "=")
		if !found {
			return nil, fmt.Errorf("%w: spec %q must be key=value", shared.ErrInvalidArgument, item)
		}
		entries = append(entries, models.Specification{Key: key, Value: value})
	}
	return entries, nil
}
