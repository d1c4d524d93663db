package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"gofalre.io/storefront/models"
)

func productCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Product management commands",
		Run:   seeHelp,
	}
	cmd.AddCommand(
		productListCmd(),
		productCreateCmd(),
		productDeleteCmd(),
		productUploadImageCmd(),
	)

	return cmd
}

func productListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}

			products, err := svc.RefreshProducts(context.Background())
			if err != nil {
				return err
			}
			renderProducts(os.Stdout, products)
			return nil
		},
	}
}

var productCreateFlags struct {
	name        string
	price       string
	stock       int
	description string
}

func productCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE:  productCreateF,
	}

	cmd.Flags().StringVarP(&productCreateFlags.name, "name", "n", "", "Product name (required)")
	cmd.Flags().StringVarP(&productCreateFlags.price, "price", "p", "0", "Unit price, e.g. 9.99")
	cmd.Flags().IntVarP(&productCreateFlags.stock, "stock", "s", 0, "Stock quantity")
	cmd.Flags().StringVarP(&productCreateFlags.description, "description", "d", "", "Product description")
	cmd.MarkFlagRequired("name")

	return cmd
}

func productCreateF(cmd *cobra.Command, args []string) error {
	price, err := decimal.NewFromString(productCreateFlags.price)
	if err != nil {
		return fmt.Errorf("parse price %q: %w", productCreateFlags.price, err)
	}

	svc, _, _, err := newService()
	if err != nil {
		return err
	}

	created, err := svc.CreateProduct(context.Background(), models.NewProduct{
		Name:          productCreateFlags.name,
		Price:         price,
		StockQuantity: productCreateFlags.stock,
		Description:   productCreateFlags.description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Product %q added successfully! ID: %d\n", created.Name, created.ProductID)
	return nil
}

var productDeleteFlags struct {
	id int
}

func productDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a product by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}

			if err := svc.DeleteProduct(context.Background(), productDeleteFlags.id); err != nil {
				return err
			}
			fmt.Printf("Product ID: %d deleted.\n", productDeleteFlags.id)
			return nil
		},
	}

	cmd.Flags().IntVarP(&productDeleteFlags.id, "id", "i", 0, "The product ID (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}

var productUploadImageFlags struct {
	id   int
	file string
}

func productUploadImageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload-image",
		Short: "Upload an image for a product",
		RunE:  productUploadImageF,
	}

	cmd.Flags().IntVarP(&productUploadImageFlags.id, "id", "i", 0, "The product ID (required)")
	cmd.Flags().StringVarP(&productUploadImageFlags.file, "file", "f", "", "Path of the image file (required)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("file")

	return cmd
}

func productUploadImageF(cmd *cobra.Command, args []string) error {
	f, err := os.Open(productUploadImageFlags.file)
	if err != nil {
		return fmt.Errorf("open image file: %w", err)
	}
	defer f.Close()

	svc, _, _, err := newService()
	if err != nil {
		return err
	}

	updated, err := svc.UploadProductImage(
		context.Background(),
		productUploadImageFlags.id,
		filepath.Base(productUploadImageFlags.file),
		f,
	)
	if err != nil {
		return err
	}

	fmt.Printf("Image uploaded for product %s!\n", updated.Name)
	return nil
}
