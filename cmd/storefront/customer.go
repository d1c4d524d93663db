package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gofalre.io/storefront/models"
)

func customerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Customer management commands",
		Run:   seeHelp,
	}
	cmd.AddCommand(
		customerListCmd(),
		customerCreateCmd(),
		customerDeleteCmd(),
	)

	return cmd
}

func customerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}

			customers, err := svc.RefreshCustomers(context.Background())
			if err != nil {
				return err
			}
			renderCustomers(os.Stdout, customers)
			return nil
		},
	}
}

var customerCreateFlags struct {
	email           string
	password        string
	firstName       string
	lastName        string
	phone           string
	shippingAddress string
}

func customerCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE:  customerCreateF,
	}

	cmd.Flags().StringVarP(&customerCreateFlags.email, "email", "e", "", "Customer email (required)")
	cmd.Flags().StringVarP(&customerCreateFlags.password, "password", "p", "", "Customer password, passed through to the customer service (required)")
	cmd.Flags().StringVar(&customerCreateFlags.firstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&customerCreateFlags.lastName, "last-name", "", "Last name (required)")
	cmd.Flags().StringVar(&customerCreateFlags.phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&customerCreateFlags.shippingAddress, "shipping-address", "", "Shipping address")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("last-name")

	return cmd
}

func customerCreateF(cmd *cobra.Command, args []string) error {
	svc, _, _, err := newService()
	if err != nil {
		return err
	}

	created, err := svc.CreateCustomer(context.Background(), models.NewCustomer{
		Email:           customerCreateFlags.email,
		Password:        customerCreateFlags.password,
		FirstName:       customerCreateFlags.firstName,
		LastName:        customerCreateFlags.lastName,
		PhoneNumber:     customerCreateFlags.phone,
		ShippingAddress: customerCreateFlags.shippingAddress,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Customer %q added! ID: %d\n", created.Email, created.CustomerID)
	return nil
}

var customerDeleteFlags struct {
	id int
}

func customerDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a customer by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}

			if err := svc.DeleteCustomer(context.Background(), customerDeleteFlags.id); err != nil {
				return err
			}
			fmt.Printf("Customer ID: %d deleted.\n", customerDeleteFlags.id)
			return nil
		},
	}

	cmd.Flags().IntVarP(&customerDeleteFlags.id, "id", "i", 0, "The customer ID (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}
