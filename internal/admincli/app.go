// Package admincli implements the terminal client for the storefront admin
// panel: login, catalog and content management, image uploads.
package admincli

import (
	"bufio"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhanamorganics/storefront/internal/models"
	"github.com/dhanamorganics/storefront/internal/netx"
)

const tokenFileName = ".dhanam_admin_token"

// App runs one admin command per invocation. The session token obtained by
// `login` is kept in a file in the user's home directory so subsequent
// commands can reuse it.
type App struct {
	serverURL string
}

func NewApp(serverURL string) *App {
	return &App{serverURL: strings.TrimRight(serverURL, "/")}
}

func tokenFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, tokenFileName), nil
}

func loadToken() string {
	path, err := tokenFilePath()
	if err != nil {
		return ""
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func saveToken(token string) error {
	path, err := tokenFilePath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func (a *App) client() *Client {
	return NewClient(a.serverURL, loadToken())
}

// Run dispatches the command. args are the remaining command-line arguments
// after the command name.
func (a *App) Run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return a.login(ctx)
	case "stats":
		return a.stats(ctx)
	case "products":
		return a.listProducts(ctx)
	case "product-add":
		return a.addProduct(ctx)
	case "product-del":
		return a.deleteProduct(ctx, args)
	case "content":
		return a.listContent(ctx)
	case "content-set":
		return a.setContentField(ctx, args)
	case "image-upload":
		return a.uploadImage(ctx, args)
	default:
		return fmt.Errorf("unknown command %q (want login|stats|products|product-add|product-del|content|content-set|image-upload)", cmd)
	}
}

func (a *App) login(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)

	email, err := GetSimpleText(reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	token, err := a.client().Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := saveToken(token); err != nil {
		return fmt.Errorf("could not save session token: %w", err)
	}

	fmt.Println("Success!")
	return nil
}

func (a *App) stats(ctx context.Context) error {
	stats, err := a.client().Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Products: %d\nCategories: %d\n", stats["totalProducts"], stats["totalCategories"])
	return nil
}

func (a *App) listProducts(ctx context.Context) error {
	products, err := a.client().Products(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Printf("%-28s %-24s ₹%-8.0f %s\n", p.ID, p.Name, p.Price, p.Category)
	}
	return nil
}

func (a *App) addProduct(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)

	var p models.Product
	var err error

	if p.Name, err = GetSimpleText(reader, "Product name", os.Stdout); err != nil {
		return err
	}
	if p.NameTranslated, err = GetSimpleText(reader, "Translated name", os.Stdout); err != nil {
		return err
	}

	priceText, err := GetSimpleText(reader, "Price", os.Stdout)
	if err != nil {
		return err
	}
	if p.Price, err = strconv.ParseFloat(priceText, 64); err != nil {
		return fmt.Errorf("invalid price: %w", err)
	}

	if p.Category, err = GetSimpleText(reader, "Category", os.Stdout); err != nil {
		return err
	}

	ratingText, err := GetSimpleText(reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	if p.Rating, err = strconv.ParseFloat(ratingText, 64); err != nil {
		return fmt.Errorf("invalid rating: %w", err)
	}

	if p.Description, err = GetSimpleText(reader, "Description", os.Stdout); err != nil {
		return err
	}

	ingredients, err := GetSimpleText(reader, "Ingredients (comma separated)", os.Stdout)
	if err != nil {
		return err
	}
	for _, ing := range strings.Split(ingredients, ",") {
		if ing = strings.TrimSpace(ing); ing != "" {
			p.Ingredients = append(p.Ingredients, ing)
		}
	}
	p.IsOrganic = true

	created, err := a.client().AddProduct(ctx, p)
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", created.ID)
	return nil
}

func (a *App) deleteProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: product-del <product id>")
	}
	if err := a.client().DeleteProduct(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

func (a *App) listContent(ctx context.Context) error {
	sections, err := a.client().Sections(ctx)
	if err != nil {
		return err
	}
	for _, s := range sections {
		fmt.Printf("[%s] %s\n", s.ID, s.Label)
		for _, f := range s.Fields {
			fmt.Printf("  %-14s %s\n", f.Key, f.Value)
		}
	}
	return nil
}

// setContentField replaces one field's value, sending the section's full
// field list back as the content store expects.
func (a *App) setContentField(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: content-set <section id> <field key> <value>")
	}
	sectionID, key, value := args[0], args[1], args[2]

	client := a.client()
	sections, err := client.Sections(ctx)
	if err != nil {
		return err
	}

	for _, s := range sections {
		if s.ID != sectionID {
			continue
		}
		for i := range s.Fields {
			if s.Fields[i].Key == key {
				s.Fields[i].Value = value
				return client.UpdateSection(ctx, sectionID, s.Fields)
			}
		}
		return fmt.Errorf("no field %q in section %q", key, sectionID)
	}
	return fmt.Errorf("no section %q", sectionID)
}

// uploadImage pushes a local image file to object storage via a presigned
// URL, then points the product at the stored key.
func (a *App) uploadImage(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: image-upload <product id> <file>")
	}
	productID, file := args[0], args[1]

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	client := a.client()
	key, url, err := client.ImageUploadURL(ctx, productID)
	if err != nil {
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(file))
	if err := netx.UploadToPresignedURL(url, data, contentType); err != nil {
		return err
	}

	if _, err := client.UpdateProduct(ctx, productID, models.ProductUpdate{Image: &key}); err != nil {
		return err
	}

	fmt.Printf("Uploaded %s as %s\n", file, key)
	return nil
}
